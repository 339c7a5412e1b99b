// Package library is the member-facing surface: browsing the video
// library, watching a video, and the like/enroll/suggest actions.
package library

import (
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	adstore "github.com/geolearnhq/geolearn/internal/app/store/ads"
	enrollstore "github.com/geolearnhq/geolearn/internal/app/store/enrollments"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	likestore "github.com/geolearnhq/geolearn/internal/app/store/likes"
	suggeststore "github.com/geolearnhq/geolearn/internal/app/store/suggestions"
	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
)

// Handler holds the stores the library pages read and mutate.
type Handler struct {
	Videos      *videostore.Store
	Likes       *likestore.Store
	Enrollments *enrollstore.Store
	Suggestions *suggeststore.Store
	Ads         *adstore.Store
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler constructs the library Handler and its stores.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Videos:      videostore.New(db),
		Likes:       likestore.New(db),
		Enrollments: enrollstore.New(db),
		Suggestions: suggeststore.New(db),
		Ads:         adstore.New(db),
		ErrLog:      errLog,
		Log:         logger,
	}
}
