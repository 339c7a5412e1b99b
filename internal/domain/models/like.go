package models

import "time"

// Like marks that a user liked a video. At most one Like exists per
// (user, video) pair; liking again removes it.
type Like struct {
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	Timestamp time.Time `json:"timestamp"`
}
