// Package userstore owns the users collection: registration, credential
// checks, and the admin-side account CRUD.
package userstore

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/system/authutil"
	"github.com/geolearnhq/geolearn/internal/app/system/validators"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

var (
	// ErrNotFound is returned when no user has the requested ID.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering with an email that is
	// already taken. The match is case-sensitive and exact.
	ErrDuplicateEmail = errors.New("Account with that email already exists.")

	// ErrInvalidCredentials is deliberately generic: it covers both an
	// unknown email and a wrong password so the login form cannot be used
	// to enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password.")
)

// Store provides access to the users collection.
type Store struct {
	db *jsonstore.DB
}

// New creates a users Store backed by the given data directory.
func New(db *jsonstore.DB) *Store { return &Store{db: db} }

// Register validates the signup inputs and creates the account. Validation
// failures come back as validators.Err* values; a taken email as
// ErrDuplicateEmail. New accounts are never administrators.
func (s *Store) Register(username, email, password, confirm string) (models.User, error) {
	if err := validators.Signup(username, email, password, confirm); err != nil {
		return models.User{}, err
	}

	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  hash,
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, user)
	if err := jsonstore.Save(s.db, jsonstore.Users, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate looks the user up by exact email and verifies the password
// against the stored hash. Both failure modes return ErrInvalidCredentials.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			if authutil.VerifyPassword(u.Password, password) {
				return u, nil
			}
			return models.User{}, ErrInvalidCredentials
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// List returns every user in stored order.
func (s *Store) List() ([]models.User, error) {
	return jsonstore.Load[models.User](s.db, jsonstore.Users)
}

// GetByID returns the user with the given ID.
func (s *Store) GetByID(id string) (models.User, error) {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UpdateInput carries the editable fields of a user. An empty NewPassword
// leaves the stored hash untouched.
type UpdateInput struct {
	Username    string
	Email       string
	NewPassword string
	IsAdmin     bool
}

// Update edits a user in place.
func (s *Store) Update(id string, in UpdateInput) error {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		users[i].Username = in.Username
		users[i].Email = in.Email
		users[i].IsAdmin = in.IsAdmin
		if in.NewPassword != "" {
			hash, err := authutil.HashPassword(in.NewPassword)
			if err != nil {
				return err
			}
			users[i].Password = hash
		}
		return jsonstore.Save(s.db, jsonstore.Users, users)
	}
	return ErrNotFound
}

// Delete removes the user record. Likes, enrollments, and suggestions that
// reference the user are left in place; the original behaved the same way
// and the orphans are harmless to every reader.
func (s *Store) Delete(id string) error {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return jsonstore.Save(s.db, jsonstore.Users, kept)
}

// EnsureAdmin makes sure an admin account with the given email exists.
// An existing account is promoted in place; otherwise a new admin account
// named "admin" is created. Called once at startup.
func (s *Store) EnsureAdmin(email, password string) error {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if users[i].IsAdmin {
			return nil
		}
		users[i].IsAdmin = true
		return jsonstore.Save(s.db, jsonstore.Users, users)
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}
	users = append(users, models.User{
		ID:        uuid.NewString(),
		Username:  "admin",
		Email:     email,
		Password:  hash,
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	})
	return jsonstore.Save(s.db, jsonstore.Users, users)
}

// RegistrationsByMonth groups user creation by "YYYY-MM" and returns
// parallel label/value slices with months ascending. Users with a zero
// created_at are skipped.
func (s *Store) RegistrationsByMonth() (labels []string, data []int, err error) {
	users, err := jsonstore.Load[models.User](s.db, jsonstore.Users)
	if err != nil {
		return nil, nil, err
	}

	counts := map[string]int{}
	for _, u := range users {
		if u.CreatedAt.IsZero() {
			continue
		}
		counts[u.CreatedAt.Format("2006-01")]++
	}

	labels = make([]string, 0, len(counts))
	for month := range counts {
		labels = append(labels, month)
	}
	sort.Strings(labels)

	data = make([]int, len(labels))
	for i, month := range labels {
		data[i] = counts[month]
	}
	return labels, data, nil
}
