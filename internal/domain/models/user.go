package models

import "time"

// User is a registered account. IsAdmin gates the /admin surface; everyone
// else is a regular member.
//
// The stored password is always a bcrypt hash, never plaintext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // bcrypt hash
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
