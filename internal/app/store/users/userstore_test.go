package userstore

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/system/validators"
	"github.com/geolearnhq/geolearn/internal/domain/models"
	"github.com/geolearnhq/geolearn/internal/testutil"
)

func TestRegisterHappyPath(t *testing.T) {
	store := New(testutil.NewDB(t))

	u, err := store.Register("maria_g", "maria@example.com", "secret1", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("missing id or created_at: %+v", u)
	}
	if u.IsAdmin {
		t.Fatal("new accounts must not be admins")
	}
	if u.Password == "secret1" || !strings.HasPrefix(u.Password, "$2") {
		t.Fatalf("password not stored as a bcrypt hash: %q", u.Password)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := New(testutil.NewDB(t))

	cases := []struct {
		name                               string
		username, email, password, confirm string
		want                               error
	}{
		{"missing fields", "", "a@b.c", "secret1", "secret1", validators.ErrMissingFields},
		{"username too short", "ab", "a@b.c", "secret1", "secret1", validators.ErrBadUsername},
		{"username bad chars", "has space", "a@b.c", "secret1", "secret1", validators.ErrBadUsername},
		{"password mismatch", "gooduser", "a@b.c", "secret1", "secret2", validators.ErrPasswordMismatch},
		{"password too short", "gooduser", "a@b.c", "12345", "12345", validators.ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Register(tc.username, tc.email, tc.password, tc.confirm)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := New(testutil.NewDB(t))
	if _, err := store.Register("first_user", "dup@example.com", "secret1", "secret1"); err != nil {
		t.Fatal(err)
	}

	_, err := store.Register("second_user", "dup@example.com", "secret1", "secret1")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}

	// The match is case-sensitive, so a different casing registers fine.
	if _, err := store.Register("third_user", "DUP@example.com", "secret1", "secret1"); err != nil {
		t.Fatalf("case-variant email rejected: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	fx.CreateUser("maria_g", "maria@example.com", "secret1", false)
	store := New(db)

	u, err := store.Authenticate("maria@example.com", "secret1")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.Username != "maria_g" {
		t.Fatalf("got user %q", u.Username)
	}

	// Unknown email and wrong password return the same error.
	for _, tc := range [][2]string{
		{"nobody@example.com", "secret1"},
		{"maria@example.com", "wrong"},
	} {
		if _, err := store.Authenticate(tc[0], tc[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q) err = %v, want ErrInvalidCredentials", tc[0], err)
		}
	}
}

func TestUpdateKeepsPasswordWhenBlank(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser("maria_g", "maria@example.com", "secret1", false)
	store := New(db)

	if err := store.Update(u.ID, UpdateInput{Username: "maria_new", Email: u.Email}); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "maria_new" {
		t.Fatalf("username = %q", got.Username)
	}
	if got.Password != u.Password {
		t.Fatal("blank password must keep the stored hash")
	}

	// The old password still works.
	if _, err := store.Authenticate(u.Email, "secret1"); err != nil {
		t.Fatalf("old password rejected: %v", err)
	}
}

// Deleting a user leaves their likes, enrollments, and suggestions behind.
func TestDeleteLeavesActivityRecords(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser("maria_g", "maria@example.com", "secret1", false)
	video := fx.CreateVideo("GIS 101", "GIS")
	fx.CreateLike(u.ID, video.ID)
	fx.CreateEnrollment(u.ID, video.ID)

	if err := New(db).Delete(u.ID); err != nil {
		t.Fatal(err)
	}

	likes, err := jsonstore.Load[models.Like](db, jsonstore.Likes)
	if err != nil {
		t.Fatal(err)
	}
	if len(likes) != 1 {
		t.Fatalf("likes were cascaded: %+v", likes)
	}
	enrollments, err := jsonstore.Load[models.Enrollment](db, jsonstore.Enrollments)
	if err != nil {
		t.Fatal(err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("enrollments were cascaded: %+v", enrollments)
	}
}

func TestEnsureAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	store := New(db)

	// Creates the account when absent.
	if err := store.EnsureAdmin("root@example.com", "supersecret"); err != nil {
		t.Fatal(err)
	}
	u, err := store.Authenticate("root@example.com", "supersecret")
	if err != nil {
		t.Fatal(err)
	}
	if !u.IsAdmin {
		t.Fatal("seeded account must be an admin")
	}

	// Promotes an existing member instead of duplicating.
	fx := testutil.NewFixtures(t, db)
	member := fx.CreateUser("plain_user", "plain@example.com", "secret1", false)
	if err := store.EnsureAdmin(member.Email, "ignored"); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetByID(member.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsAdmin {
		t.Fatal("existing account was not promoted")
	}
	users, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestRegistrationsByMonth(t *testing.T) {
	db := testutil.NewDB(t)
	users := []models.User{
		{ID: "1", CreatedAt: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "2", CreatedAt: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
		{ID: "3", CreatedAt: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "4"}, // zero created_at is skipped
	}
	if err := jsonstore.Save(db, jsonstore.Users, users); err != nil {
		t.Fatal(err)
	}

	labels, data, err := New(db).RegistrationsByMonth()
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 || labels[0] != "2026-01" || labels[1] != "2026-03" {
		t.Fatalf("labels = %v", labels)
	}
	if data[0] != 1 || data[1] != 2 {
		t.Fatalf("data = %v", data)
	}
}
