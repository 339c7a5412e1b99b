// Package logout clears the session and returns the visitor to the library.
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/geolearnhq/geolearn/internal/app/system/auth"
)

// Handler holds the logout feature dependencies.
type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs the logout Handler.
func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

// HandleLogout serves GET /logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", u.ID))
	}
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("sign out", zap.Error(err))
	}
	http.Redirect(w, r, "/library", http.StatusSeeOther)
}
