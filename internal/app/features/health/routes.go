package health

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the health endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHealth)
	return r
}
