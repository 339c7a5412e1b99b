package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/system/authutil"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewDB opens a flat-file store in a fresh temp directory. The directory is
// removed when the test finishes.
func NewDB(t *testing.T) *jsonstore.DB {
	t.Helper()
	db, err := jsonstore.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return db
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *jsonstore.DB
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test store.
func NewFixtures(t *testing.T, db *jsonstore.DB) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying store for direct access in tests.
func (f *Fixtures) DB() *jsonstore.DB {
	return f.db
}

func appendRecord[T any](f *Fixtures, collection string, record T) {
	f.t.Helper()
	records, err := jsonstore.Load[T](f.db, collection)
	if err != nil {
		f.t.Fatalf("load %s: %v", collection, err)
	}
	if err := jsonstore.Save(f.db, collection, append(records, record)); err != nil {
		f.t.Fatalf("save %s: %v", collection, err)
	}
}

// CreateUser creates a test user with a bcrypt hash of the given password.
func (f *Fixtures) CreateUser(username, email, password string, isAdmin bool) models.User {
	f.t.Helper()
	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  hash,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	appendRecord(f, jsonstore.Users, user)
	return user
}

// CreateVideo creates a test video in the given category.
func (f *Fixtures) CreateVideo(title, category string) models.Video {
	f.t.Helper()
	video := models.Video{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  "about " + title,
		Category:     category,
		VideoURL:     "https://videos.test/" + title + ".mp4",
		ThumbnailURL: "https://videos.test/" + title + ".jpg",
		UploadedAt:   time.Now().UTC(),
	}
	appendRecord(f, jsonstore.Videos, video)
	return video
}

// CreateLike records a like pair directly, without touching the video's
// counter.
func (f *Fixtures) CreateLike(userID, videoID string) models.Like {
	f.t.Helper()
	like := models.Like{
		UserID:    userID,
		VideoID:   videoID,
		Timestamp: time.Now().UTC(),
	}
	appendRecord(f, jsonstore.Likes, like)
	return like
}

// CreateEnrollment records an enrollment pair directly.
func (f *Fixtures) CreateEnrollment(userID, videoID string) models.Enrollment {
	f.t.Helper()
	enrollment := models.Enrollment{
		ID:        uuid.NewString(),
		UserID:    userID,
		VideoID:   videoID,
		Timestamp: time.Now().UTC(),
	}
	appendRecord(f, jsonstore.Enrollments, enrollment)
	return enrollment
}

// CreateSuggestion records a suggestion directly.
func (f *Fixtures) CreateSuggestion(userID, videoID, text string) models.Suggestion {
	f.t.Helper()
	suggestion := models.Suggestion{
		ID:             uuid.NewString(),
		UserID:         userID,
		VideoID:        videoID,
		SuggestionText: text,
		Timestamp:      time.Now().UTC(),
	}
	appendRecord(f, jsonstore.Suggestions, suggestion)
	return suggestion
}

// CreateAd creates an active ad with an empty dismissal set.
func (f *Fixtures) CreateAd(title string, active bool) models.Ad {
	f.t.Helper()
	ad := models.Ad{
		ID:               uuid.NewString(),
		Title:            title,
		Content:          "content for " + title,
		IsActive:         active,
		CreatedAt:        time.Now().UTC(),
		DismissedByUsers: []string{},
	}
	appendRecord(f, jsonstore.Ads, ad)
	return ad
}
