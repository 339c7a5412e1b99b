// Package donationstore owns the append-only donation comments collection.
package donationstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// AnonymousEmail stands in when a signed-out visitor leaves a comment.
const AnonymousEmail = "Anonymous"

var strip = bluemonday.StrictPolicy()

// Store provides access to the donation comments collection.
type Store struct {
	db *jsonstore.DB
}

// New creates a donations Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// Add appends a comment. The email is captured by value so later user
// edits or deletions never touch it.
func (s *Store) Add(userEmail, comment string) (models.DonationComment, error) {
	if userEmail == "" {
		userEmail = AnonymousEmail
	}
	comments, err := jsonstore.Load[models.DonationComment](s.db, jsonstore.DonationComments)
	if err != nil {
		return models.DonationComment{}, err
	}
	dc := models.DonationComment{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Comment:   strings.TrimSpace(strip.Sanitize(comment)),
		Timestamp: time.Now().UTC(),
	}
	comments = append(comments, dc)
	if err := jsonstore.Save(s.db, jsonstore.DonationComments, comments); err != nil {
		return models.DonationComment{}, err
	}
	return dc, nil
}

// List returns every donation comment in stored (chronological) order.
func (s *Store) List() ([]models.DonationComment, error) {
	return jsonstore.Load[models.DonationComment](s.db, jsonstore.DonationComments)
}
