package models

import "time"

// DonationComment is an append-only note left with a donation. The email is
// captured by value ("Anonymous" for signed-out visitors); there is no
// foreign key back to users.
type DonationComment struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
