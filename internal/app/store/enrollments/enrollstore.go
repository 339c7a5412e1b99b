// Package enrollstore owns the enrollments collection.
package enrollstore

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

var (
	// ErrVideoNotFound is returned when enrolling in an unknown video.
	ErrVideoNotFound = errors.New("video not found")

	// ErrAlreadyEnrolled is returned when the (user, video) pair already
	// has an enrollment; re-enrolling never creates a duplicate.
	ErrAlreadyEnrolled = errors.New("Already enrolled.")
)

// Store provides access to the enrollments collection.
type Store struct {
	db *jsonstore.DB
}

// New creates an enrollments Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// Create enrolls the user in the video with a fresh ID and the current
// timestamp.
func (s *Store) Create(userID, videoID string) (models.Enrollment, error) {
	videos, err := jsonstore.Load[models.Video](s.db, jsonstore.Videos)
	if err != nil {
		return models.Enrollment{}, err
	}
	found := false
	for _, v := range videos {
		if v.ID == videoID {
			found = true
			break
		}
	}
	if !found {
		return models.Enrollment{}, ErrVideoNotFound
	}

	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return models.Enrollment{}, err
	}
	for _, e := range enrollments {
		if e.UserID == userID && e.VideoID == videoID {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
	}

	enrollment := models.Enrollment{
		ID:        uuid.NewString(),
		UserID:    userID,
		VideoID:   videoID,
		Timestamp: time.Now().UTC(),
	}
	enrollments = append(enrollments, enrollment)
	if err := jsonstore.Save(s.db, jsonstore.Enrollments, enrollments); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// IsEnrolled reports whether the user has an enrollment for the video.
func (s *Store) IsEnrolled(userID, videoID string) (bool, error) {
	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.UserID == userID && e.VideoID == videoID {
			return true, nil
		}
	}
	return false, nil
}

// VideoIDsByUser returns the IDs of every video the user is enrolled in,
// in stored order.
func (s *Store) VideoIDsByUser(userID string) ([]string, error) {
	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.UserID == userID {
			ids = append(ids, e.VideoID)
		}
	}
	return ids, nil
}

// List returns every enrollment in stored order.
func (s *Store) List() ([]models.Enrollment, error) {
	return jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
}

// TrendByDay counts enrollments per "YYYY-MM-DD" and returns parallel
// label/value slices with dates ascending.
func (s *Store) TrendByDay() (labels []string, data []int, err error) {
	enrollments, err := jsonstore.Load[models.Enrollment](s.db, jsonstore.Enrollments)
	if err != nil {
		return nil, nil, err
	}

	counts := map[string]int{}
	for _, e := range enrollments {
		counts[e.Timestamp.Format("2006-01-02")]++
	}

	labels = make([]string, 0, len(counts))
	for day := range counts {
		labels = append(labels, day)
	}
	sort.Strings(labels)

	data = make([]int, len(labels))
	for i, day := range labels {
		data[i] = counts[day]
	}
	return labels, data, nil
}
