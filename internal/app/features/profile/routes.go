package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/geolearnhq/geolearn/internal/app/system/auth"
)

// Routes returns a subrouter for the profile page.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/", h.ServeProfile)
	return r
}
