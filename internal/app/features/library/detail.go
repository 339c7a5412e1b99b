package library

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// DetailVM is the view model for the video detail page.
type DetailVM struct {
	viewdata.BaseVM
	Video          videoCard
	VideoURL       string
	IsLiked        bool
	IsEnrolled     bool
	UserSuggestion string
	Notice         string
	NoticeError    string
}

// Detail serves GET /video/{id}. Every hit counts as a view; views are not
// deduplicated per user.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := auth.CurrentUser(r)

	video, err := h.Videos.RecordView(id)
	if errors.Is(err, videostore.ErrNotFound) {
		http.Redirect(w, r, "/library", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "record view", err, "A server error occurred.", "/library")
		return
	}
	metrics.ViewsRecorded.Inc()

	isLiked, err := h.Likes.IsLiked(user.ID, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check like", err, "A server error occurred.", "/library")
		return
	}
	isEnrolled, err := h.Enrollments.IsEnrolled(user.ID, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "check enrollment", err, "A server error occurred.", "/library")
		return
	}

	userSuggestion := ""
	if isEnrolled {
		if sg, ok, err := h.Suggestions.ForUserVideo(user.ID, id); err != nil {
			h.ErrLog.LogServerError(w, r, "load suggestion", err, "A server error occurred.", "/library")
			return
		} else if ok {
			userSuggestion = sg.SuggestionText
		}
	}

	vm := DetailVM{
		BaseVM:         viewdata.NewBaseVM(r, video.Title, "/library"),
		Video:          newVideoCard(video),
		VideoURL:       video.VideoURL,
		IsLiked:        isLiked,
		IsEnrolled:     isEnrolled,
		UserSuggestion: userSuggestion,
	}

	switch query.Get(r, "suggestion") {
	case "saved":
		vm.Notice = "Suggestion submitted successfully!"
	case "empty":
		vm.NoticeError = "Suggestion cannot be empty."
	case "not_enrolled":
		vm.NoticeError = "You must be enrolled in this video to submit a suggestion."
	}

	templates.Render(w, r, "video_detail", vm)
}
