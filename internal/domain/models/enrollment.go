package models

import "time"

// Enrollment records that a user joined a video course. (UserID, VideoID)
// is unique; re-enrolling is rejected rather than duplicated.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	Timestamp time.Time `json:"timestamp"`
}
