package enrollstore

import (
	"errors"
	"testing"

	"github.com/geolearnhq/geolearn/internal/testutil"
)

func TestCreateAndDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Surveying 101", "Survey")
	store := New(db)

	e, err := store.Create("user-1", video.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == "" || e.Timestamp.IsZero() {
		t.Fatalf("enrollment missing id or timestamp: %+v", e)
	}

	if _, err := store.Create("user-1", video.ID); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("second Create err = %v, want ErrAlreadyEnrolled", err)
	}

	// A different user may still enroll.
	if _, err := store.Create("user-2", video.ID); err != nil {
		t.Fatalf("other user Create: %v", err)
	}
}

func TestCreateUnknownVideo(t *testing.T) {
	store := New(testutil.NewDB(t))
	if _, err := store.Create("user-1", "missing"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("err = %v, want ErrVideoNotFound", err)
	}
}

func TestIsEnrolled(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Photogrammetry Intro", "Photogrammetry")
	fx.CreateEnrollment("user-1", video.ID)

	store := New(db)
	got, err := store.IsEnrolled("user-1", video.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("expected user-1 enrolled")
	}
	got, err = store.IsEnrolled("user-2", video.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("user-2 should not be enrolled")
	}
}

func TestTrendByDay(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("GIS Deep Dive", "GIS")
	fx.CreateEnrollment("user-1", video.ID)
	fx.CreateEnrollment("user-2", video.ID)

	labels, data, err := New(db).TrendByDay()
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 1 || len(data) != 1 {
		t.Fatalf("labels=%v data=%v, want one bucket", labels, data)
	}
	if data[0] != 2 {
		t.Fatalf("today's count = %d, want 2", data[0])
	}
}
