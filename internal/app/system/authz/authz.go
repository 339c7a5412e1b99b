package authz

import (
	"net/http"
	"strings"

	"github.com/geolearnhq/geolearn/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, ID, and a found flag.
// If no user is present in context it returns "visitor", "", "", false, so
// callers can trust that ok=true means an authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsAdmin reports whether the current request's user is an administrator.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == auth.RoleAdmin
}

// IsSignedIn reports whether the request carries any authenticated user.
func IsSignedIn(r *http.Request) bool {
	_, ok := auth.CurrentUser(r)
	return ok
}
