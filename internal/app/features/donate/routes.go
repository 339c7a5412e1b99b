package donate

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the donation page.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDonate)
	r.Post("/", h.HandleDonatePost)
	return r
}
