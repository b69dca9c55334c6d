package model

import "time"

// Friend is the data structure for a single entry of the contact book, as
// stored on the database and as returned by the REST API. Phone and Notes
// are nullable on the database and therefore pointers here.
type Friend struct {
	Id        int64     `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Phone     *string   `json:"phone"      db:"phone"`
	Notes     *string   `json:"notes"      db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FriendInput is the shape that POST and PUT request bodies are parsed into
// before validation. All fields are pointers so that the validator can tell
// an absent field from an empty one. Unknown JSON fields are dropped by the
// parse, and non-object bodies fail it outright.
type FriendInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

// FriendFields is the validated and normalized payload that the store writes
// to the database. An empty phone or notes string has been coerced to nil at
// this point.
type FriendFields struct {
	Name  string
	Email string
	Phone *string
	Notes *string
}
