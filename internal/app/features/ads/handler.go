// Package ads serves ad dismissal for members and ad management for admins.
package ads

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	adstore "github.com/geolearnhq/geolearn/internal/app/store/ads"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
)

// Handler holds the ads feature dependencies.
type Handler struct {
	Ads    *adstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the ads Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Ads:    adstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

type dismissResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Dismiss serves POST /ads/{id}/dismiss. The dismissal is permanent for the
// user and repeating it is a no-op.
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, dismissResult{Success: false, Message: "Login required."})
		return
	}
	adID := strings.TrimSpace(chi.URLParam(r, "id"))

	err := h.Ads.Dismiss(user.ID, adID)
	if errors.Is(err, adstore.ErrNotFound) {
		writeJSON(w, http.StatusOK, dismissResult{Success: false, Message: "Ad not found."})
		return
	}
	if err != nil {
		h.Log.Error("dismiss ad", zap.String("ad_id", adID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dismissResult{Success: false, Message: "A server error occurred."})
		return
	}
	metrics.AdsDismissed.Inc()
	writeJSON(w, http.StatusOK, dismissResult{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
