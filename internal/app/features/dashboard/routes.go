package dashboard

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the admin dashboard and its chart APIs.
// The caller mounts it behind the admin role check.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Get("/api/video_views", h.VideoViewsChart)
	r.Get("/api/enrollment_trends", h.EnrollmentTrendsChart)
	r.Get("/api/likes_distribution", h.LikesDistributionChart)
	r.Get("/api/user_activity", h.UserActivityChart)
	return r
}
