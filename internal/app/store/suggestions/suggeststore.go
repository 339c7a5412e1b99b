// Package suggeststore owns the suggestions collection. Suggestions are
// gated on enrollment and upsert in place per (user, video) pair.
package suggeststore

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

var (
	// ErrEmptySuggestion is returned when the submitted text is blank.
	ErrEmptySuggestion = errors.New("Suggestion cannot be empty.")

	// ErrNotEnrolled is returned when the user has no enrollment for the
	// video they are commenting on.
	ErrNotEnrolled = errors.New("You must be enrolled in this video to submit a suggestion.")
)

// strip removes all HTML from user-submitted text before it is stored.
var strip = bluemonday.StrictPolicy()

// Store provides access to the suggestions collection.
type Store struct {
	db *jsonstore.DB
}

// New creates a suggestions Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// Submit records the user's suggestion for a video. A prior suggestion for
// the same (user, video) pair is updated in place with new text and
// timestamp; otherwise a new record is inserted with a fresh ID. Either
// way the collection holds at most one suggestion per pair.
func (s *Store) Submit(userID, videoID, text string) (models.Suggestion, error) {
	text = strings.TrimSpace(strip.Sanitize(text))
	if text == "" {
		return models.Suggestion{}, ErrEmptySuggestion
	}

	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return models.Suggestion{}, err
	}
	enrolled := false
	for _, e := range enrollments {
		if e.UserID == userID && e.VideoID == videoID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return models.Suggestion{}, ErrNotEnrolled
	}

	suggestions, err := jsonstore.Load[models.Suggestion](s.db, jsonstore.Suggestions)
	if err != nil {
		return models.Suggestion{}, err
	}

	now := time.Now().UTC()
	for i := range suggestions {
		if suggestions[i].UserID == userID && suggestions[i].VideoID == videoID {
			suggestions[i].SuggestionText = text
			suggestions[i].Timestamp = now
			if err := jsonstore.Save(s.db, jsonstore.Suggestions, suggestions); err != nil {
				return models.Suggestion{}, err
			}
			return suggestions[i], nil
		}
	}

	suggestion := models.Suggestion{
		ID:             uuid.NewString(),
		UserID:         userID,
		VideoID:        videoID,
		SuggestionText: text,
		Timestamp:      now,
	}
	suggestions = append(suggestions, suggestion)
	if err := jsonstore.Save(s.db, jsonstore.Suggestions, suggestions); err != nil {
		return models.Suggestion{}, err
	}
	return suggestion, nil
}

// ForUserVideo returns the user's suggestion for a video, if any.
func (s *Store) ForUserVideo(userID, videoID string) (models.Suggestion, bool, error) {
	suggestions, err := jsonstore.Load[models.Suggestion](s.db, jsonstore.Suggestions)
	if err != nil {
		return models.Suggestion{}, false, err
	}
	for _, sg := range suggestions {
		if sg.UserID == userID && sg.VideoID == videoID {
			return sg, true, nil
		}
	}
	return models.Suggestion{}, false, nil
}
