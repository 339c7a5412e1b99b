// Package adstore owns the ads (announcements) collection and the
// per-user dismissal set kept on each record.
package adstore

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// ErrNotFound is returned when no ad has the requested ID.
var ErrNotFound = errors.New("ad not found")

// sanitize allows basic formatting in ad content but nothing scriptable.
var sanitize = bluemonday.UGCPolicy()

// Store provides access to the ads collection.
type Store struct {
	db *jsonstore.DB
}

// New creates an ads Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// List returns every ad in stored order.
func (s *Store) List() ([]models.Ad, error) {
	return jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
}

// GetByID returns the ad with the given ID.
func (s *Store) GetByID(id string) (models.Ad, error) {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return models.Ad{}, err
	}
	for _, a := range ads {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Ad{}, ErrNotFound
}

// CreateInput carries the editable fields of an ad.
type CreateInput struct {
	Title    string
	Content  string
	ImageURL string
	LinkURL  string
	IsActive bool
}

// Create appends a new ad with a fresh ID, the current timestamp, and an
// empty dismissal set.
func (s *Store) Create(in CreateInput) (models.Ad, error) {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return models.Ad{}, err
	}
	ad := models.Ad{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Content:          sanitize.Sanitize(in.Content),
		ImageURL:         in.ImageURL,
		LinkURL:          in.LinkURL,
		IsActive:         in.IsActive,
		CreatedAt:        time.Now().UTC(),
		DismissedByUsers: []string{},
	}
	ads = append(ads, ad)
	if err := jsonstore.Save(s.db, jsonstore.Ads, ads); err != nil {
		return models.Ad{}, err
	}
	return ad, nil
}

// Update edits an ad in place. The dismissal set is preserved; users who
// dismissed the old version stay opted out.
func (s *Store) Update(id string, in CreateInput) error {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return err
	}
	for i := range ads {
		if ads[i].ID != id {
			continue
		}
		ads[i].Title = in.Title
		ads[i].Content = sanitize.Sanitize(in.Content)
		ads[i].ImageURL = in.ImageURL
		ads[i].LinkURL = in.LinkURL
		ads[i].IsActive = in.IsActive
		return jsonstore.Save(s.db, jsonstore.Ads, ads)
	}
	return ErrNotFound
}

// Delete removes the ad record.
func (s *Store) Delete(id string) error {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return err
	}
	kept := ads[:0]
	for _, a := range ads {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return jsonstore.Save(s.db, jsonstore.Ads, kept)
}

// Dismiss adds userID to the ad's dismissal set. Dismissing an already
// dismissed ad is a no-op, never a duplicate or an error.
func (s *Store) Dismiss(userID, adID string) error {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return err
	}
	for i := range ads {
		if ads[i].ID != adID {
			continue
		}
		if !ads[i].DismissedBy(userID) {
			ads[i].DismissedByUsers = append(ads[i].DismissedByUsers, userID)
		}
		return jsonstore.Save(s.db, jsonstore.Ads, ads)
	}
	return ErrNotFound
}

// ActiveFor returns the active ads the given user has not dismissed.
// An empty userID (signed-out visitor) gets every active ad.
func (s *Store) ActiveFor(userID string) ([]models.Ad, error) {
	ads, err := jsonstore.Load[models.Ad](s.db, jsonstore.Ads)
	if err != nil {
		return nil, err
	}
	active := make([]models.Ad, 0, len(ads))
	for _, a := range ads {
		if !a.IsActive {
			continue
		}
		if userID != "" && a.DismissedBy(userID) {
			continue
		}
		active = append(active, a)
	}
	return active, nil
}
