package library

import (
	"github.com/go-chi/chi/v5"

	"github.com/geolearnhq/geolearn/internal/app/system/auth"
)

// Routes returns the library router. Browsing is public; watching a video
// and every action on it require a signed-in user.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/library", h.List)

	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)
		r.Get("/video/{id}", h.Detail)
		r.Post("/video/{id}/like", h.ToggleLike)
		r.Post("/video/{id}/enroll", h.Enroll)
		r.Post("/video/{id}/suggestion", h.SubmitSuggestion)
	})

	return r
}
