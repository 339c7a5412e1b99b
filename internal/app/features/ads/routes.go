package ads

import (
	"github.com/go-chi/chi/v5"

	"github.com/geolearnhq/geolearn/internal/app/system/auth"
)

// Routes returns a subrouter for member-facing ad endpoints.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.With(sessionMgr.RequireSignedIn).Post("/{id}/dismiss", h.Dismiss)
	return r
}

// AdminRoutes returns a subrouter for the ad management pages. The caller
// mounts it behind the admin role check.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.AdminList)
	r.Get("/new", h.AdminNew)
	r.Post("/new", h.AdminCreate)
	r.Get("/{id}/edit", h.AdminEdit)
	r.Post("/{id}/edit", h.AdminUpdate)
	r.Post("/{id}/delete", h.AdminDelete)
	return r
}
