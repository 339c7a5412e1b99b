package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	likestore "github.com/geolearnhq/geolearn/internal/app/store/likes"
	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
	"github.com/geolearnhq/geolearn/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.NewDB(t)
	logger := zap.NewNop()
	return NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func fetchChart(t *testing.T, fn http.HandlerFunc, path string) chartPayload {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	fn(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d", path, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var p chartPayload
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	return p
}

func TestVideoViewsChart(t *testing.T) {
	h, fx := newTestHandler(t)
	v1 := fx.CreateVideo("Map Projections", "Cartography")
	fx.CreateVideo("Point Clouds", "Photogrammetry")

	// Two views on one video, none on the other.
	vs := videostore.New(h.DB)
	if _, err := vs.RecordView(v1.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := vs.RecordView(v1.ID); err != nil {
		t.Fatal(err)
	}

	p := fetchChart(t, h.VideoViewsChart, "/admin/api/video_views")
	if p.ChartType != "bar" || p.Title != "Video Views by Category" {
		t.Fatalf("payload = %+v", p)
	}
	if len(p.Labels) != 2 || len(p.Data) != 2 {
		t.Fatalf("labels = %v data = %v", p.Labels, p.Data)
	}
	total := 0
	for _, n := range p.Data {
		total += n
	}
	if total != 2 {
		t.Fatalf("total views = %d, want 2", total)
	}
}

func TestEnrollmentTrendsChart(t *testing.T) {
	h, fx := newTestHandler(t)
	u := fx.CreateUser("maria_g", "maria@example.com", "secret1", false)
	v := fx.CreateVideo("GIS 101", "GIS")
	fx.CreateEnrollment(u.ID, v.ID)

	p := fetchChart(t, h.EnrollmentTrendsChart, "/admin/api/enrollment_trends")
	if p.ChartType != "line" || p.Title != "Enrollment Trends" {
		t.Fatalf("payload = %+v", p)
	}
	if len(p.Labels) != 1 || len(p.Data) != 1 || p.Data[0] != 1 {
		t.Fatalf("labels = %v data = %v", p.Labels, p.Data)
	}
}

func TestLikesDistributionChart(t *testing.T) {
	h, fx := newTestHandler(t)
	u := fx.CreateUser("maria_g", "maria@example.com", "secret1", false)
	v := fx.CreateVideo("GIS 101", "GIS")
	if _, _, err := likestore.New(h.DB).Toggle(u.ID, v.ID); err != nil {
		t.Fatal(err)
	}

	p := fetchChart(t, h.LikesDistributionChart, "/admin/api/likes_distribution")
	if p.ChartType != "pie" || p.Title != "Likes Distribution" {
		t.Fatalf("payload = %+v", p)
	}
	if len(p.Labels) != 1 || p.Labels[0] != "GIS 101" || p.Data[0] != 1 {
		t.Fatalf("labels = %v data = %v", p.Labels, p.Data)
	}
}

func TestUserActivityChart(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateUser("maria_g", "maria@example.com", "secret1", false)

	p := fetchChart(t, h.UserActivityChart, "/admin/api/user_activity")
	if p.ChartType != "bar" || p.Title != "User Registrations by Month" {
		t.Fatalf("payload = %+v", p)
	}
	if len(p.Labels) != 1 || p.Data[0] != 1 {
		t.Fatalf("labels = %v data = %v", p.Labels, p.Data)
	}
}

func TestChartsOnEmptyStore(t *testing.T) {
	h, _ := newTestHandler(t)

	endpoints := []struct {
		name string
		fn   http.HandlerFunc
	}{
		{"video_views", h.VideoViewsChart},
		{"enrollment_trends", h.EnrollmentTrendsChart},
		{"likes_distribution", h.LikesDistributionChart},
		{"user_activity", h.UserActivityChart},
	}
	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			p := fetchChart(t, ep.fn, "/admin/api/"+ep.name)
			// Empty stores serialize as [] rather than null.
			if p.Labels == nil || p.Data == nil {
				t.Fatalf("nil slices in payload: %+v", p)
			}
			if len(p.Labels) != 0 || len(p.Data) != 0 {
				t.Fatalf("expected empty chart, got %+v", p)
			}
		})
	}
}
