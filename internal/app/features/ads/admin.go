package ads

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	adstore "github.com/geolearnhq/geolearn/internal/app/store/ads"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

type adRow struct {
	ID           string
	Title        string
	Content      string
	ImageURL     string
	LinkURL      string
	IsActive     bool
	DismissCount int
}

// AdminListVM is the view model for the ad management page.
type AdminListVM struct {
	viewdata.BaseVM
	Ads []adRow
}

// AdminFormVM is the view model for the ad add/edit form.
type AdminFormVM struct {
	viewdata.BaseVM
	Editing bool
	Error   string
	Ad      adRow
}

// AdminList serves GET /admin/ads.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	ads, err := h.Ads.List()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load ads", err, "Could not load ads.", "/admin")
		return
	}
	vm := AdminListVM{BaseVM: viewdata.NewBaseVM(r, "Manage Ads", "/admin")}
	for _, ad := range ads {
		vm.Ads = append(vm.Ads, row(ad))
	}
	templates.Render(w, r, "admin_ads", vm)
}

// AdminNew serves GET /admin/ads/new.
func (h *Handler) AdminNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "admin_ad_form", AdminFormVM{
		BaseVM: viewdata.NewBaseVM(r, "New Ad", "/admin/ads"),
		Ad:     adRow{IsActive: true},
	})
}

// AdminCreate serves POST /admin/ads/new.
func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	in, errMsg := parseAdForm(r)
	if errMsg != "" {
		templates.Render(w, r, "admin_ad_form", AdminFormVM{
			BaseVM: viewdata.NewBaseVM(r, "New Ad", "/admin/ads"),
			Error:  errMsg,
			Ad:     formRow(in),
		})
		return
	}
	if _, err := h.Ads.Create(in); err != nil {
		h.ErrLog.LogServerError(w, r, "create ad", err, "Could not save the ad.", "/admin/ads")
		return
	}
	http.Redirect(w, r, "/admin/ads", http.StatusSeeOther)
}

// AdminEdit serves GET /admin/ads/{id}/edit.
func (h *Handler) AdminEdit(w http.ResponseWriter, r *http.Request) {
	ad, err := h.Ads.GetByID(chi.URLParam(r, "id"))
	if errors.Is(err, adstore.ErrNotFound) {
		http.Redirect(w, r, "/admin/ads", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load ad", err, "Could not load the ad.", "/admin/ads")
		return
	}
	templates.Render(w, r, "admin_ad_form", AdminFormVM{
		BaseVM:  viewdata.NewBaseVM(r, "Edit Ad", "/admin/ads"),
		Editing: true,
		Ad:      row(ad),
	})
}

// AdminUpdate serves POST /admin/ads/{id}/edit.
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, errMsg := parseAdForm(r)
	if errMsg != "" {
		vm := AdminFormVM{
			BaseVM:  viewdata.NewBaseVM(r, "Edit Ad", "/admin/ads"),
			Editing: true,
			Error:   errMsg,
			Ad:      formRow(in),
		}
		vm.Ad.ID = id
		templates.Render(w, r, "admin_ad_form", vm)
		return
	}
	err := h.Ads.Update(id, in)
	if errors.Is(err, adstore.ErrNotFound) {
		http.Redirect(w, r, "/admin/ads", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update ad", err, "Could not save the ad.", "/admin/ads")
		return
	}
	http.Redirect(w, r, "/admin/ads", http.StatusSeeOther)
}

// AdminDelete serves POST /admin/ads/{id}/delete.
func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Ads.Delete(chi.URLParam(r, "id")); err != nil {
		h.ErrLog.LogServerError(w, r, "delete ad", err, "Could not delete the ad.", "/admin/ads")
		return
	}
	http.Redirect(w, r, "/admin/ads", http.StatusSeeOther)
}

func parseAdForm(r *http.Request) (adstore.CreateInput, string) {
	if err := r.ParseForm(); err != nil {
		return adstore.CreateInput{}, "Invalid form data."
	}
	in := adstore.CreateInput{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Content:  strings.TrimSpace(r.FormValue("content")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
		LinkURL:  strings.TrimSpace(r.FormValue("link_url")),
		IsActive: r.FormValue("is_active") == "on",
	}
	if in.Title == "" {
		return in, "Title is required."
	}
	return in, ""
}

func row(ad models.Ad) adRow {
	return adRow{
		ID:           ad.ID,
		Title:        ad.Title,
		Content:      ad.Content,
		ImageURL:     ad.ImageURL,
		LinkURL:      ad.LinkURL,
		IsActive:     ad.IsActive,
		DismissCount: len(ad.DismissedByUsers),
	}
}

func formRow(in adstore.CreateInput) adRow {
	return adRow{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		LinkURL:  in.LinkURL,
		IsActive: in.IsActive,
	}
}
