// Package profile shows a member their liked and enrolled videos.
package profile

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	adstore "github.com/geolearnhq/geolearn/internal/app/store/ads"
	enrollstore "github.com/geolearnhq/geolearn/internal/app/store/enrollments"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	likestore "github.com/geolearnhq/geolearn/internal/app/store/likes"
	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// Handler holds the profile feature dependencies.
type Handler struct {
	Videos      *videostore.Store
	Likes       *likestore.Store
	Enrollments *enrollstore.Store
	Ads         *adstore.Store
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

// NewHandler constructs the profile Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Videos:      videostore.New(db),
		Likes:       likestore.New(db),
		Enrollments: enrollstore.New(db),
		Ads:         adstore.New(db),
		ErrLog:      errLog,
		Log:         logger,
	}
}

type videoCard struct {
	ID           string
	Title        string
	Category     string
	ThumbnailURL string
	Views        int
	LikesCount   int
}

type adBanner struct {
	ID       string
	Title    string
	Content  string
	ImageURL string
	LinkURL  string
}

// ProfileVM is the view model for the profile page.
type ProfileVM struct {
	viewdata.BaseVM
	Email          string
	LikedVideos    []videoCard
	EnrolledVideos []videoCard
	Ads            []adBanner
}

// ServeProfile serves GET /profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	likedIDs, err := h.Likes.VideoIDsByUser(user.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load likes", err, "Could not load your profile.", "/library")
		return
	}
	enrolledIDs, err := h.Enrollments.VideoIDsByUser(user.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load enrollments", err, "Could not load your profile.", "/library")
		return
	}
	ads, err := h.Ads.ActiveFor(user.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load ads", err, "Could not load your profile.", "/library")
		return
	}

	vm := ProfileVM{
		BaseVM: viewdata.NewBaseVM(r, "My Profile", "/library"),
		Email:  user.Email,
	}
	vm.LikedVideos = h.cards(likedIDs)
	vm.EnrolledVideos = h.cards(enrolledIDs)
	for _, ad := range ads {
		vm.Ads = append(vm.Ads, adBanner{
			ID:       ad.ID,
			Title:    ad.Title,
			Content:  ad.Content,
			ImageURL: ad.ImageURL,
			LinkURL:  ad.LinkURL,
		})
	}
	templates.Render(w, r, "profile", vm)
}

// cards resolves video IDs to cards, dropping IDs whose video no longer
// exists (likes and enrollments are not cleaned up when a user is deleted,
// and a video delete may race a like).
func (h *Handler) cards(ids []string) []videoCard {
	out := make([]videoCard, 0, len(ids))
	for _, id := range ids {
		v, err := h.Videos.GetByID(id)
		if err != nil {
			continue
		}
		out = append(out, card(v))
	}
	return out
}

func card(v models.Video) videoCard {
	return videoCard{
		ID:           v.ID,
		Title:        v.Title,
		Category:     v.Category,
		ThumbnailURL: v.ThumbnailURL,
		Views:        v.Views,
		LikesCount:   v.LikesCount,
	}
}
