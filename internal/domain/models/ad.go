package models

import "time"

// Ad is an announcement banner shown on the library and profile pages.
//
// Dismissal is per-user: once a user's ID lands in DismissedByUsers the ad
// stays hidden for that user.
type Ad struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	ImageURL         string    `json:"image_url"`
	LinkURL          string    `json:"link_url"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	DismissedByUsers []string  `json:"dismissed_by_users"`
}

// DismissedBy reports whether userID has dismissed this ad.
func (a *Ad) DismissedBy(userID string) bool {
	for _, id := range a.DismissedByUsers {
		if id == userID {
			return true
		}
	}
	return false
}
