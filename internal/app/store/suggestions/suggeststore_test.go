package suggeststore

import (
	"errors"
	"testing"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/domain/models"
	"github.com/geolearnhq/geolearn/internal/testutil"
)

func TestSubmitRequiresEnrollment(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Terrain Analysis", "GIS")

	_, err := New(db).Submit("user-1", video.ID, "more examples please")
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("err = %v, want ErrNotEnrolled", err)
	}
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Terrain Analysis", "GIS")
	fx.CreateEnrollment("user-1", video.ID)

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := New(db).Submit("user-1", video.ID, text); !errors.Is(err, ErrEmptySuggestion) {
			t.Fatalf("Submit(%q) err = %v, want ErrEmptySuggestion", text, err)
		}
	}
}

func TestSubmitUpsertsInPlace(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Terrain Analysis", "GIS")
	fx.CreateEnrollment("user-1", video.ID)
	store := New(db)

	first, err := store.Submit("user-1", video.ID, "first take")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := store.Submit("user-1", video.ID, "second take")
	if err != nil {
		t.Fatalf("Submit again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("resubmit created a new record: %s vs %s", second.ID, first.ID)
	}

	all, err := jsonstore.Load[models.Suggestion](db, jsonstore.Suggestions)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one suggestion, got %d", len(all))
	}
	if all[0].SuggestionText != "second take" {
		t.Fatalf("text = %q, want %q", all[0].SuggestionText, "second take")
	}
	if !all[0].Timestamp.After(first.Timestamp) && !all[0].Timestamp.Equal(first.Timestamp) {
		t.Fatal("timestamp was not refreshed")
	}
}

func TestSubmitStripsMarkup(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Terrain Analysis", "GIS")
	fx.CreateEnrollment("user-1", video.ID)

	got, err := New(db).Submit("user-1", video.ID, `<script>alert(1)</script>needs captions`)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.SuggestionText != "needs captions" {
		t.Fatalf("text = %q, want markup stripped", got.SuggestionText)
	}
}

func TestForUserVideo(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	video := fx.CreateVideo("Terrain Analysis", "GIS")
	fx.CreateSuggestion("user-1", video.ID, "slow down the pace")

	s, found, err := New(db).ForUserVideo("user-1", video.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !found || s.SuggestionText != "slow down the pace" {
		t.Fatalf("found=%v text=%q", found, s.SuggestionText)
	}

	_, found, err = New(db).ForUserVideo("user-2", video.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("user-2 has no suggestion")
	}
}
