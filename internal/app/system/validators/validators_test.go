package validators

import (
	"errors"
	"strings"
	"testing"
)

func TestSignup(t *testing.T) {
	cases := []struct {
		name                               string
		username, email, password, confirm string
		want                               error
	}{
		{"valid", "maria_g", "m@example.com", "secret1", "secret1", nil},
		{"empty username", "", "m@example.com", "secret1", "secret1", ErrMissingFields},
		{"empty email", "maria_g", "", "secret1", "secret1", ErrMissingFields},
		{"empty password", "maria_g", "m@example.com", "", "", ErrMissingFields},
		{"short username", "ab", "m@example.com", "secret1", "secret1", ErrBadUsername},
		{"long username", strings.Repeat("a", 21), "m@example.com", "secret1", "secret1", ErrBadUsername},
		{"username with space", "has space", "m@example.com", "secret1", "secret1", ErrBadUsername},
		{"username with dash", "has-dash", "m@example.com", "secret1", "secret1", ErrBadUsername},
		{"mismatch", "maria_g", "m@example.com", "secret1", "secret2", ErrPasswordMismatch},
		{"short password", "maria_g", "m@example.com", "12345", "12345", ErrPasswordTooShort},
		{"six char password ok", "maria_g", "m@example.com", "123456", "123456", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Signup(tc.username, tc.email, tc.password, tc.confirm)
			if !errors.Is(got, tc.want) {
				t.Fatalf("Signup() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	valid := []string{"abc", "user_name", "A1_", strings.Repeat("x", 20)}
	for _, name := range valid {
		if !Username(name) {
			t.Errorf("Username(%q) = false, want true", name)
		}
	}
	invalid := []string{"", "ab", "has space", "p@ss", strings.Repeat("x", 21)}
	for _, name := range invalid {
		if Username(name) {
			t.Errorf("Username(%q) = true, want false", name)
		}
	}
}
