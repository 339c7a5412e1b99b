package logout

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the logout endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleLogout)
	return r
}
