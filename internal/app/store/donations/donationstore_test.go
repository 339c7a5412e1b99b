package donationstore

import (
	"testing"

	"github.com/geolearnhq/geolearn/internal/testutil"
)

func TestAddWithEmail(t *testing.T) {
	store := New(testutil.NewDB(t))
	c, err := store.Add("maria@example.com", "Keep it up!")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == "" || c.Timestamp.IsZero() {
		t.Fatalf("missing id or timestamp: %+v", c)
	}
	if c.UserEmail != "maria@example.com" {
		t.Fatalf("email = %q", c.UserEmail)
	}
}

func TestAddAnonymous(t *testing.T) {
	store := New(testutil.NewDB(t))
	c, err := store.Add("", "great site")
	if err != nil {
		t.Fatal(err)
	}
	if c.UserEmail != AnonymousEmail {
		t.Fatalf("email = %q, want %q", c.UserEmail, AnonymousEmail)
	}
}

func TestAddStripsMarkup(t *testing.T) {
	store := New(testutil.NewDB(t))
	c, err := store.Add("", `<img src=x onerror=alert(1)>thanks`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Comment != "thanks" {
		t.Fatalf("comment = %q, want markup stripped", c.Comment)
	}
}

func TestListReturnsStoredOrder(t *testing.T) {
	store := New(testutil.NewDB(t))
	if _, err := store.Add("a@example.com", "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add("b@example.com", "second"); err != nil {
		t.Fatal(err)
	}

	got, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Comment != "first" || got[1].Comment != "second" {
		t.Fatalf("list = %+v", got)
	}
}
