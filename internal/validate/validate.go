// Package validate checks incoming friend payloads against the schema
// constraints before they reach the database.
package validate

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"friends-service/internal/model"
)

// emailPattern accepts local@domain where the domain contains at least one
// dot. It deliberately stays close to the schema of the REST API and does
// not attempt full RFC 5322 parsing.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Friend validates an incoming payload and returns the normalized fields to
// be written to the database. The rules are checked in a fixed order and the
// first violation wins. The returned error message is suitable to be used
// directly in the JSON response of the REST API.
//
// It is a pure function of its input and has no side effects.
func Friend(in model.FriendInput) (model.FriendFields, error) {
	if in.Name == nil {
		return model.FriendFields{}, errors.New("name is required")
	}
	if utf8.RuneCountInString(*in.Name) < 1 {
		return model.FriendFields{}, errors.New("name must not be empty")
	}
	if utf8.RuneCountInString(*in.Name) > 255 {
		return model.FriendFields{}, errors.New("name must be at most 255 characters long")
	}
	if in.Email == nil {
		return model.FriendFields{}, errors.New("email is required")
	}
	if !emailPattern.MatchString(*in.Email) {
		return model.FriendFields{}, errors.New("email must be a valid email address")
	}
	if in.Phone != nil && utf8.RuneCountInString(*in.Phone) > 50 {
		return model.FriendFields{}, errors.New("phone must be at most 50 characters long")
	}
	if in.Notes != nil && utf8.RuneCountInString(*in.Notes) > 2000 {
		return model.FriendFields{}, errors.New("notes must be at most 2000 characters long")
	}
	return model.FriendFields{
		Name:  *in.Name,
		Email: *in.Email,
		Phone: normalize(in.Phone),
		Notes: normalize(in.Notes),
	}, nil
}

// normalize coerces an empty string to nil so that it is stored as NULL.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
