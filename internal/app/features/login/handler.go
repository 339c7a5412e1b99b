// Package login renders the sign-in form and establishes sessions.
package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	userstore "github.com/geolearnhq/geolearn/internal/app/store/users"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler holds the login feature dependencies.
type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs the login Handler.
func NewHandler(db *jsonstore.DB, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      userstore.New(db),
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// loginFormData is the view model for the login form.
type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Notice    string
	Email     string
	ReturnURL string
}

// ServeLogin serves GET /login. Signed-in users go straight back to the
// library.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/library", http.StatusSeeOther)
		return
	}

	vm := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	}
	if query.Get(r, "registered") == "1" {
		vm.Notice = "Your account has been created! You can now log in."
	}
	templates.Render(w, r, "login", vm)
}

// HandleLoginPost serves POST /login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/library", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter both email and password.", email, ret)
		return
	}

	user, err := h.Users.Authenticate(email, password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		// Same message for unknown email and wrong password; the form must
		// not reveal which one it was.
		h.renderFormWithError(w, r, err.Error(), email, ret)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "authenticate user", err, "A server error occurred.", "/login")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &user); err != nil {
		h.ErrLog.LogServerError(w, r, "create session", err, "A server error occurred.", "/login")
		return
	}
	metrics.LoginsCompleted.Inc()
	h.Log.Info("user signed in", zap.String("user_id", user.ID))

	dest := "/library"
	if ret != "" && strings.HasPrefix(ret, "/") {
		dest = ret
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}
