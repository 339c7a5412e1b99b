// Package enrollmentreport builds the admin enrollment report by joining
// enrollments against users, videos, and suggestions in memory.
package enrollmentreport

import (
	"time"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// Placeholders used when a referenced record is missing. The report never
// fails as a whole because one enrollment points at a deleted user or
// video; orphans simply show up labeled as unknown.
const (
	UnknownUser     = "Unknown User"
	UnknownVideo    = "Unknown Video"
	NoSuggestionYet = "No suggestion yet"
)

// Row is one enrollment joined with its user, video, and suggestion.
type Row struct {
	UserEmail      string
	UserUsername   string
	VideoTitle     string
	EnrolledAt     time.Time
	SuggestionText string
}

// Build loads all four collections and produces one row per enrollment in
// stored order.
func Build(db *jsonstore.DB) ([]Row, error) {
	enrollments, err := jsonstore.Load[models.Enrollment](db, jsonstore.Enrollments)
	if err != nil {
		return nil, err
	}
	users, err := jsonstore.Load[models.User](db, jsonstore.Users)
	if err != nil {
		return nil, err
	}
	videos, err := jsonstore.Load[models.Video](db, jsonstore.Videos)
	if err != nil {
		return nil, err
	}
	suggestions, err := jsonstore.Load[models.Suggestion](db, jsonstore.Suggestions)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	videosByID := make(map[string]models.Video, len(videos))
	for _, v := range videos {
		videosByID[v.ID] = v
	}
	suggestionText := make(map[[2]string]string, len(suggestions))
	for _, sg := range suggestions {
		suggestionText[[2]string{sg.UserID, sg.VideoID}] = sg.SuggestionText
	}

	rows := make([]Row, 0, len(enrollments))
	for _, e := range enrollments {
		row := Row{
			UserEmail:      UnknownUser,
			UserUsername:   UnknownUser,
			VideoTitle:     UnknownVideo,
			EnrolledAt:     e.Timestamp,
			SuggestionText: NoSuggestionYet,
		}
		if u, ok := usersByID[e.UserID]; ok {
			row.UserEmail = u.Email
			row.UserUsername = u.Username
		}
		if v, ok := videosByID[e.VideoID]; ok {
			row.VideoTitle = v.Title
		}
		if text, ok := suggestionText[[2]string{e.UserID, e.VideoID}]; ok {
			row.SuggestionText = text
		}
		rows = append(rows, row)
	}
	return rows, nil
}
