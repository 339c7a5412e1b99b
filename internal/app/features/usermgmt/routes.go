package usermgmt

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the user management pages. The caller
// mounts it behind the admin role check.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}/edit", h.Edit)
	r.Post("/{id}/edit", h.Update)
	r.Post("/{id}/delete", h.Delete)
	return r
}
