package dashboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	enrollstore "github.com/geolearnhq/geolearn/internal/app/store/enrollments"
	userstore "github.com/geolearnhq/geolearn/internal/app/store/users"
	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
)

// topLikedLimit caps the pie chart at the most-liked videos so it stays
// readable.
const topLikedLimit = 5

// chartPayload is the JSON shape the dashboard charts consume.
type chartPayload struct {
	Labels    []string `json:"labels"`
	Data      []int    `json:"data"`
	ChartType string   `json:"chart_type"`
	Title     string   `json:"title"`
}

// VideoViewsChart serves GET /admin/api/video_views: total views per
// category as a bar chart.
func (h *Handler) VideoViewsChart(w http.ResponseWriter, r *http.Request) {
	labels, data, err := videostore.New(h.DB).ViewsByCategory()
	if err != nil {
		h.chartError(w, "views by category", err)
		return
	}
	h.writeChart(w, chartPayload{
		Labels:    labels,
		Data:      data,
		ChartType: "bar",
		Title:     "Video Views by Category",
	})
}

// EnrollmentTrendsChart serves GET /admin/api/enrollment_trends: enrollments
// per day as a line chart.
func (h *Handler) EnrollmentTrendsChart(w http.ResponseWriter, r *http.Request) {
	labels, data, err := enrollstore.New(h.DB).TrendByDay()
	if err != nil {
		h.chartError(w, "enrollment trend", err)
		return
	}
	h.writeChart(w, chartPayload{
		Labels:    labels,
		Data:      data,
		ChartType: "line",
		Title:     "Enrollment Trends",
	})
}

// LikesDistributionChart serves GET /admin/api/likes_distribution: like
// counts of the most-liked videos as a pie chart.
func (h *Handler) LikesDistributionChart(w http.ResponseWriter, r *http.Request) {
	labels, data, err := videostore.New(h.DB).TopLiked(topLikedLimit)
	if err != nil {
		h.chartError(w, "likes distribution", err)
		return
	}
	h.writeChart(w, chartPayload{
		Labels:    labels,
		Data:      data,
		ChartType: "pie",
		Title:     "Likes Distribution",
	})
}

// UserActivityChart serves GET /admin/api/user_activity: registrations per
// month as a bar chart.
func (h *Handler) UserActivityChart(w http.ResponseWriter, r *http.Request) {
	labels, data, err := userstore.New(h.DB).RegistrationsByMonth()
	if err != nil {
		h.chartError(w, "user activity", err)
		return
	}
	h.writeChart(w, chartPayload{
		Labels:    labels,
		Data:      data,
		ChartType: "bar",
		Title:     "User Registrations by Month",
	})
}

func (h *Handler) writeChart(w http.ResponseWriter, p chartPayload) {
	if p.Labels == nil {
		p.Labels = []string{}
	}
	if p.Data == nil {
		p.Data = []int{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (h *Handler) chartError(w http.ResponseWriter, what string, err error) {
	h.Log.Error("chart query", zap.String("chart", what), zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "A server error occurred."})
}
