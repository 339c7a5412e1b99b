// Package validators holds the signup input rules. They live outside the
// handlers so the users store can enforce them no matter which surface
// creates an account.
package validators

import (
	"errors"
	"regexp"
)

var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Validation errors carry the user-facing message directly; signup renders
// them verbatim.
var (
	ErrMissingFields    = errors.New("All fields are required.")
	ErrBadUsername      = errors.New("Username must be 3-20 characters long and contain only letters, numbers, or underscores.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long.")
)

// Signup validates the registration inputs. Email uniqueness is checked by
// the users store, which is the only place that can see the collection.
func Signup(username, email, password, confirm string) error {
	if username == "" || email == "" || password == "" || confirm == "" {
		return ErrMissingFields
	}
	if !usernameRE.MatchString(username) {
		return ErrBadUsername
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// Username reports whether name satisfies the username rule on its own.
func Username(name string) bool { return usernameRE.MatchString(name) }
