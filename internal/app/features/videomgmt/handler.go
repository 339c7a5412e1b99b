// Package videomgmt provides the admin screens for managing the video
// catalog.
package videomgmt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// Handler holds the video management dependencies.
type Handler struct {
	Videos *videostore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the video management Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Videos: videostore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

type videoRow struct {
	ID           string
	Title        string
	Description  string
	Category     string
	VideoURL     string
	ThumbnailURL string
	Views        int
	LikesCount   int
	UploadedAt   string
}

// ListVM is the view model for the video management page.
type ListVM struct {
	viewdata.BaseVM
	Videos []videoRow
}

// FormVM is the view model for the video add/edit form.
type FormVM struct {
	viewdata.BaseVM
	Editing    bool
	Error      string
	Categories []string
	Video      videoRow
}

// List serves GET /admin/videos.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Videos.List("", videostore.SortRecent)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load videos", err, "Could not load videos.", "/admin")
		return
	}
	vm := ListVM{BaseVM: viewdata.NewBaseVM(r, "Manage Videos", "/admin")}
	for _, v := range videos {
		vm.Videos = append(vm.Videos, row(v))
	}
	templates.Render(w, r, "admin_videos", vm)
}

// New serves GET /admin/videos/new.
func (h *Handler) New(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "admin_video_form", FormVM{
		BaseVM:     viewdata.NewBaseVM(r, "New Video", "/admin/videos"),
		Categories: models.Categories,
	})
}

// Create serves POST /admin/videos/new.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, errMsg := parseVideoForm(r)
	if errMsg != "" {
		templates.Render(w, r, "admin_video_form", FormVM{
			BaseVM:     viewdata.NewBaseVM(r, "New Video", "/admin/videos"),
			Error:      errMsg,
			Categories: models.Categories,
			Video:      formRow(in),
		})
		return
	}
	v, err := h.Videos.Create(in)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create video", err, "Could not save the video.", "/admin/videos")
		return
	}
	h.Log.Info("video created", zap.String("video_id", v.ID), zap.String("title", v.Title))
	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

// Edit serves GET /admin/videos/{id}/edit.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	v, err := h.Videos.GetByID(chi.URLParam(r, "id"))
	if errors.Is(err, videostore.ErrNotFound) {
		http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load video", err, "Could not load the video.", "/admin/videos")
		return
	}
	templates.Render(w, r, "admin_video_form", FormVM{
		BaseVM:     viewdata.NewBaseVM(r, "Edit Video", "/admin/videos"),
		Editing:    true,
		Categories: models.Categories,
		Video:      row(v),
	})
}

// Update serves POST /admin/videos/{id}/edit. View and like counters are not
// editable.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, errMsg := parseVideoForm(r)
	if errMsg != "" {
		vm := FormVM{
			BaseVM:     viewdata.NewBaseVM(r, "Edit Video", "/admin/videos"),
			Editing:    true,
			Error:      errMsg,
			Categories: models.Categories,
			Video:      formRow(in),
		}
		vm.Video.ID = id
		templates.Render(w, r, "admin_video_form", vm)
		return
	}
	err := h.Videos.Update(id, in)
	if errors.Is(err, videostore.ErrNotFound) {
		http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update video", err, "Could not save the video.", "/admin/videos")
		return
	}
	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

// Delete serves POST /admin/videos/{id}/delete. Likes, enrollments, and
// suggestions for the video are removed with it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Videos.Delete(id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete video", err, "Could not delete the video.", "/admin/videos")
		return
	}
	h.Log.Info("video deleted", zap.String("video_id", id))
	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

func parseVideoForm(r *http.Request) (videostore.CreateInput, string) {
	if err := r.ParseForm(); err != nil {
		return videostore.CreateInput{}, "Invalid form data."
	}
	in := videostore.CreateInput{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		VideoURL:     strings.TrimSpace(r.FormValue("video_url")),
		ThumbnailURL: strings.TrimSpace(r.FormValue("thumbnail_url")),
	}
	if in.Title == "" || in.VideoURL == "" {
		return in, "Title and video URL are required."
	}
	return in, ""
}

func row(v models.Video) videoRow {
	return videoRow{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Views:        v.Views,
		LikesCount:   v.LikesCount,
		UploadedAt:   v.UploadedAt.Format("Jan 2, 2006"),
	}
}

func formRow(in videostore.CreateInput) videoRow {
	return videoRow{
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
	}
}
