// Package usermgmt provides the admin screens for managing accounts.
package usermgmt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	userstore "github.com/geolearnhq/geolearn/internal/app/store/users"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// Handler holds the user management dependencies.
type Handler struct {
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the user management Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

type userRow struct {
	ID        string
	Username  string
	Email     string
	IsAdmin   bool
	CreatedAt string
}

// ListVM is the view model for the user management page.
type ListVM struct {
	viewdata.BaseVM
	Users []userRow
}

// FormVM is the view model for the user edit form.
type FormVM struct {
	viewdata.BaseVM
	Error string
	User  userRow
}

// List serves GET /admin/users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load users", err, "Could not load users.", "/admin")
		return
	}
	vm := ListVM{BaseVM: viewdata.NewBaseVM(r, "Manage Users", "/admin")}
	for _, u := range users {
		vm.Users = append(vm.Users, row(u))
	}
	templates.Render(w, r, "admin_users", vm)
}

// Edit serves GET /admin/users/{id}/edit.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.GetByID(chi.URLParam(r, "id"))
	if errors.Is(err, userstore.ErrNotFound) {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load user", err, "Could not load the user.", "/admin/users")
		return
	}
	templates.Render(w, r, "admin_user_form", FormVM{
		BaseVM: viewdata.NewBaseVM(r, "Edit User", "/admin/users"),
		User:   row(u),
	})
}

// Update serves POST /admin/users/{id}/edit. Leaving the password blank keeps
// the current one.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse user form", err, "Invalid form data.", "/admin/users")
		return
	}

	in := userstore.UpdateInput{
		Username:    strings.TrimSpace(r.FormValue("username")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		NewPassword: r.FormValue("new_password"),
		IsAdmin:     r.FormValue("is_admin") == "on",
	}
	if in.Username == "" || in.Email == "" {
		vm := FormVM{
			BaseVM: viewdata.NewBaseVM(r, "Edit User", "/admin/users"),
			Error:  "Username and email are required.",
			User:   userRow{ID: id, Username: in.Username, Email: in.Email, IsAdmin: in.IsAdmin},
		}
		templates.Render(w, r, "admin_user_form", vm)
		return
	}

	err := h.Users.Update(id, in)
	if errors.Is(err, userstore.ErrNotFound) {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update user", err, "Could not save the user.", "/admin/users")
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// Delete serves POST /admin/users/{id}/delete. Admins cannot delete their own
// account. The user's likes, enrollments, and suggestions are left in place.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if me, ok := auth.CurrentUser(r); ok && me.ID == id {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	if err := h.Users.Delete(id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete user", err, "Could not delete the user.", "/admin/users")
		return
	}
	h.Log.Info("user deleted", zap.String("user_id", id))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func row(u models.User) userRow {
	return userRow{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format("Jan 2, 2006"),
	}
}
