package signup

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the signup endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSignup)
	r.Post("/", h.HandleSignupPost)
	return r
}
