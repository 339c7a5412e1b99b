// Package metrics exposes Prometheus counters for the handful of domain
// events worth watching on a small deployment.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ViewsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_views_recorded_total", Help: "Total video detail views recorded"},
	)
	LikesToggled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_likes_toggled_total", Help: "Total like/unlike toggles"},
	)
	EnrollmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_enrollments_created_total", Help: "Total course enrollments created"},
	)
	SuggestionsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_suggestions_submitted_total", Help: "Total suggestions submitted or updated"},
	)
	SignupsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_signups_completed_total", Help: "Total completed registrations"},
	)
	LoginsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_logins_completed_total", Help: "Total successful logins"},
	)
	AdsDismissed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_ads_dismissed_total", Help: "Total ad dismissals"},
	)
	DonationComments = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "geolearn_donation_comments_total", Help: "Total donation comments left"},
	)
)

func Register() {
	prometheus.MustRegister(
		ViewsRecorded,
		LikesToggled,
		EnrollmentsCreated,
		SuggestionsSubmitted,
		SignupsCompleted,
		LoginsCompleted,
		AdsDismissed,
		DonationComments,
	)
}
