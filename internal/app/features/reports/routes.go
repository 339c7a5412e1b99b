package reports

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the report pages. The caller mounts it
// behind the admin role check.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeEnrollments)
	return r
}
