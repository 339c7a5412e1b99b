package videostore

import (
	"errors"
	"testing"
	"time"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
	"github.com/geolearnhq/geolearn/internal/testutil"
)

func seedVideos(t *testing.T, db *jsonstore.DB, videos []models.Video) {
	t.Helper()
	if err := jsonstore.Save(db, jsonstore.Videos, videos); err != nil {
		t.Fatal(err)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC()
	seedVideos(t, db, []models.Video{
		{ID: "1", Title: "A", Category: "GIS", UploadedAt: now},
		{ID: "2", Title: "B", Category: "Survey", UploadedAt: now},
		{ID: "3", Title: "C", Category: "GIS", UploadedAt: now},
	})

	got, err := New(db).List("GIS", SortRecent)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d videos, want 2", len(got))
	}
	for _, v := range got {
		if v.Category != "GIS" {
			t.Fatalf("unexpected category %q", v.Category)
		}
	}

	// "" and "all" both mean no filter.
	for _, cat := range []string{"", "all"} {
		got, err := New(db).List(cat, SortRecent)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("List(%q) returned %d videos, want 3", cat, len(got))
		}
	}
}

func TestListSortOrders(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC()
	seedVideos(t, db, []models.Video{
		{ID: "old", UploadedAt: now.Add(-48 * time.Hour), Views: 30, LikesCount: 1},
		{ID: "new", UploadedAt: now, Views: 10, LikesCount: 2},
		{ID: "mid", UploadedAt: now.Add(-24 * time.Hour), Views: 20, LikesCount: 3},
	})
	store := New(db)

	got, err := store.List("", SortRecent)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "new" || got[2].ID != "old" {
		t.Fatalf("recent order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}

	got, err = store.List("", SortMostViewed)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "old" || got[2].ID != "new" {
		t.Fatalf("most viewed order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}

	got, err = store.List("", SortMostLiked)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("most liked order = %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
}

// An unknown sort value falls back to the recency order, and a video with
// no uploaded_at sorts last.
func TestListSortFallbackAndMissingTimestamp(t *testing.T) {
	db := testutil.NewDB(t)
	seedVideos(t, db, []models.Video{
		{ID: "undated"},
		{ID: "dated", UploadedAt: time.Now().UTC()},
	})

	got, err := New(db).List("", "bogus")
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "dated" || got[1].ID != "undated" {
		t.Fatalf("order = %s,%s", got[0].ID, got[1].ID)
	}
}

func TestCategoriesUsesDefaultForBlank(t *testing.T) {
	db := testutil.NewDB(t)
	seedVideos(t, db, []models.Video{
		{ID: "1", Category: "Survey"},
		{ID: "2", Category: ""},
		{ID: "3", Category: "GIS"},
	})

	got, err := New(db).Categories()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"GIS", "Survey", models.DefaultCategory}
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestCreateSetsDefaults(t *testing.T) {
	store := New(testutil.NewDB(t))
	v, err := store.Create(CreateInput{Title: "New", Category: "GIS", VideoURL: "https://v/1.mp4"})
	if err != nil {
		t.Fatal(err)
	}
	if v.ID == "" || v.UploadedAt.IsZero() {
		t.Fatalf("missing id or upload time: %+v", v)
	}
	if v.Views != 0 || v.LikesCount != 0 {
		t.Fatalf("counters must start at zero: %+v", v)
	}
}

func TestUpdateLeavesCountersAlone(t *testing.T) {
	db := testutil.NewDB(t)
	uploaded := time.Now().UTC().Add(-time.Hour)
	seedVideos(t, db, []models.Video{
		{ID: "1", Title: "Old", Views: 7, LikesCount: 3, UploadedAt: uploaded},
	})
	store := New(db)

	if err := store.Update("1", CreateInput{Title: "Renamed", Category: "GIS", VideoURL: "https://v/1.mp4"}); err != nil {
		t.Fatal(err)
	}

	v, err := store.GetByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if v.Title != "Renamed" {
		t.Fatalf("title = %q", v.Title)
	}
	if v.Views != 7 || v.LikesCount != 3 || !v.UploadedAt.Equal(uploaded) {
		t.Fatalf("immutable fields changed: %+v", v)
	}
}

func TestUpdateUnknownVideo(t *testing.T) {
	store := New(testutil.NewDB(t))
	if err := store.Update("missing", CreateInput{Title: "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	doomed := fx.CreateVideo("Doomed", "GIS")
	kept := fx.CreateVideo("Kept", "GIS")

	fx.CreateLike("user-1", doomed.ID)
	fx.CreateLike("user-1", kept.ID)
	fx.CreateEnrollment("user-1", doomed.ID)
	fx.CreateEnrollment("user-1", kept.ID)
	fx.CreateSuggestion("user-1", doomed.ID, "too fast")
	fx.CreateSuggestion("user-1", kept.ID, "great")

	if err := New(db).Delete(doomed.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := New(db).GetByID(doomed.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted video still present: %v", err)
	}

	likes, err := jsonstore.Load[models.Like](db, jsonstore.Likes)
	if err != nil {
		t.Fatal(err)
	}
	if len(likes) != 1 || likes[0].VideoID != kept.ID {
		t.Fatalf("likes after cascade: %+v", likes)
	}

	enrollments, err := jsonstore.Load[models.Enrollment](db, jsonstore.Enrollments)
	if err != nil {
		t.Fatal(err)
	}
	if len(enrollments) != 1 || enrollments[0].VideoID != kept.ID {
		t.Fatalf("enrollments after cascade: %+v", enrollments)
	}

	suggestions, err := jsonstore.Load[models.Suggestion](db, jsonstore.Suggestions)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || suggestions[0].VideoID != kept.ID {
		t.Fatalf("suggestions after cascade: %+v", suggestions)
	}
}

func TestRecordView(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Counted", "GIS")
	store := New(db)

	for i := 1; i <= 3; i++ {
		v, err := store.RecordView(video.ID)
		if err != nil {
			t.Fatal(err)
		}
		if v.Views != i {
			t.Fatalf("views = %d, want %d", v.Views, i)
		}
	}

	if _, err := store.RecordView("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestViewsByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	seedVideos(t, db, []models.Video{
		{ID: "1", Category: "Survey", Views: 5},
		{ID: "2", Category: "GIS", Views: 2},
		{ID: "3", Category: "GIS", Views: 4},
	})

	labels, data, err := New(db).ViewsByCategory()
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 || labels[0] != "GIS" || labels[1] != "Survey" {
		t.Fatalf("labels = %v", labels)
	}
	if data[0] != 6 || data[1] != 5 {
		t.Fatalf("data = %v", data)
	}
}

func TestTopLiked(t *testing.T) {
	db := testutil.NewDB(t)
	seedVideos(t, db, []models.Video{
		{ID: "1", Title: "low", LikesCount: 1},
		{ID: "2", Title: "high", LikesCount: 9},
		{ID: "3", Title: "mid", LikesCount: 5},
	})

	labels, data, err := New(db).TopLiked(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 || labels[0] != "high" || labels[1] != "mid" {
		t.Fatalf("labels = %v", labels)
	}
	if data[0] != 9 || data[1] != 5 {
		t.Fatalf("data = %v", data)
	}
}
