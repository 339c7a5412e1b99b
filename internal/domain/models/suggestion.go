package models

import "time"

// Suggestion is feedback an enrolled user leaves on a video. One per
// (user, video) pair; resubmitting replaces the text in place.
type Suggestion struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	VideoID        string    `json:"video_id"`
	SuggestionText string    `json:"suggestion_text"`
	Timestamp      time.Time `json:"timestamp"`
}
