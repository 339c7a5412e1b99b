package login

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the login endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}
