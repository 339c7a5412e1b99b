// Package signup handles new account registration.
package signup

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	userstore "github.com/geolearnhq/geolearn/internal/app/store/users"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
	"github.com/geolearnhq/geolearn/internal/app/system/validators"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler holds the signup feature dependencies.
type Handler struct {
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the signup Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

// signupFormData is the view model for the registration form.
type signupFormData struct {
	viewdata.BaseVM
	Error    string
	Username string
	Email    string
}

// ServeSignup serves GET /signup.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/library", http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "signup", signupFormData{
		BaseVM: viewdata.NewBaseVM(r, "Sign Up", "/"),
	})
}

// HandleSignupPost serves POST /signup.
func (h *Handler) HandleSignupPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/library", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse signup form", err, "Invalid form data.", "/signup")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	user, err := h.Users.Register(username, email, password, confirm)
	switch {
	case err == nil:
		// fall through
	case errors.Is(err, validators.ErrMissingFields),
		errors.Is(err, validators.ErrBadUsername),
		errors.Is(err, validators.ErrPasswordMismatch),
		errors.Is(err, validators.ErrPasswordTooShort),
		errors.Is(err, userstore.ErrDuplicateEmail):
		templates.Render(w, r, "signup", signupFormData{
			BaseVM:   viewdata.NewBaseVM(r, "Sign Up", "/"),
			Error:    err.Error(),
			Username: username,
			Email:    email,
		})
		return
	default:
		h.ErrLog.LogServerError(w, r, "register user", err, "A server error occurred.", "/signup")
		return
	}

	metrics.SignupsCompleted.Inc()
	h.Log.Info("user registered", zap.String("user_id", user.ID))
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}
