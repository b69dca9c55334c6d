package model

import "time"

// Friend is the JSON shape of a contact book entry as exchanged with the
// friends service. On creation requests the Id and the timestamps are absent
// because the server assigns them.
type Friend struct {
	Id        int64      `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
