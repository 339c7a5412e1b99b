package library

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	enrollstore "github.com/geolearnhq/geolearn/internal/app/store/enrollments"
	likestore "github.com/geolearnhq/geolearn/internal/app/store/likes"
	suggeststore "github.com/geolearnhq/geolearn/internal/app/store/suggestions"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
)

// actionResult is the JSON payload for the asynchronous page actions.
type actionResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Liked      *bool  `json:"liked,omitempty"`
	LikesCount *int   `json:"likes_count,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ToggleLike serves POST /video/{id}/like and returns the new liked state
// and like count as JSON.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := auth.CurrentUser(r)

	liked, count, err := h.Likes.Toggle(user.ID, id)
	if errors.Is(err, likestore.ErrVideoNotFound) {
		writeJSON(w, actionResult{Success: false, Message: "Video not found."})
		return
	}
	if err != nil {
		h.Log.Error("toggle like", zap.Error(err), zap.String("video_id", id))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	metrics.LikesToggled.Inc()

	writeJSON(w, actionResult{Success: true, Liked: &liked, LikesCount: &count})
}

// Enroll serves POST /video/{id}/enroll. Enrolling twice is reported as a
// failure without creating a duplicate.
func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := auth.CurrentUser(r)

	_, err := h.Enrollments.Create(user.ID, id)
	switch {
	case errors.Is(err, enrollstore.ErrVideoNotFound):
		writeJSON(w, actionResult{Success: false, Message: "Video not found."})
		return
	case errors.Is(err, enrollstore.ErrAlreadyEnrolled):
		writeJSON(w, actionResult{Success: false, Message: "Already enrolled."})
		return
	case err != nil:
		h.Log.Error("enroll", zap.Error(err), zap.String("video_id", id))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	metrics.EnrollmentsCreated.Inc()

	writeJSON(w, actionResult{Success: true, Message: "Enrolled successfully!"})
}

// SubmitSuggestion serves POST /video/{id}/suggestion (a plain form post)
// and redirects back to the detail page with a notice.
func (h *Handler) SubmitSuggestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := auth.CurrentUser(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse suggestion form", err, "Invalid form data.", "/video/"+id)
		return
	}

	_, err := h.Suggestions.Submit(user.ID, id, r.FormValue("suggestion"))
	switch {
	case errors.Is(err, suggeststore.ErrEmptySuggestion):
		http.Redirect(w, r, "/video/"+id+"?suggestion=empty", http.StatusSeeOther)
		return
	case errors.Is(err, suggeststore.ErrNotEnrolled):
		http.Redirect(w, r, "/video/"+id+"?suggestion=not_enrolled", http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "submit suggestion", err, "A server error occurred.", "/video/"+id)
		return
	}
	metrics.SuggestionsSubmitted.Inc()

	http.Redirect(w, r, "/video/"+id+"?suggestion=saved", http.StatusSeeOther)
}
