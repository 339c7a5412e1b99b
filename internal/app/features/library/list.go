package library

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	videostore "github.com/geolearnhq/geolearn/internal/app/store/videos"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
	"github.com/geolearnhq/geolearn/internal/domain/models"
)

// videoCard is one entry in the library grid.
type videoCard struct {
	ID           string
	Title        string
	Description  string
	Category     string
	ThumbnailURL string
	UploadedAt   string
	Views        int
	LikesCount   int
}

// adBanner is an active announcement shown above the grid.
type adBanner struct {
	ID       string
	Title    string
	Content  string
	ImageURL string
	LinkURL  string
}

// ListVM is the view model for the library page.
type ListVM struct {
	viewdata.BaseVM
	Videos          []videoCard
	Categories      []string
	CurrentCategory string
	CurrentSort     string
	Ads             []adBanner
}

// Home serves GET / with the landing page from the shared template set.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", struct {
		viewdata.BaseVM
	}{viewdata.NewBaseVM(r, "Home", "/")})
}

// List serves GET /library with optional category and sort_by query
// parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := query.Get(r, "category")
	sortBy := query.Get(r, "sort_by")
	if sortBy == "" {
		sortBy = videostore.SortRecent
	}

	vids, err := h.Videos.List(category, sortBy)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list videos", err, "A server error occurred.", "/")
		return
	}
	categories, err := h.Videos.Categories()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list categories", err, "A server error occurred.", "/")
		return
	}

	// Signed-out visitors see every active ad; they have no dismissal set.
	userID := ""
	if u, ok := auth.CurrentUser(r); ok {
		userID = u.ID
	}
	ads, err := h.Ads.ActiveFor(userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load ads", err, "A server error occurred.", "/")
		return
	}

	vm := ListVM{
		BaseVM:          viewdata.NewBaseVM(r, "Library", "/"),
		Videos:          make([]videoCard, 0, len(vids)),
		Categories:      categories,
		CurrentCategory: category,
		CurrentSort:     sortBy,
		Ads:             make([]adBanner, 0, len(ads)),
	}
	for _, v := range vids {
		vm.Videos = append(vm.Videos, newVideoCard(v))
	}
	for _, a := range ads {
		vm.Ads = append(vm.Ads, adBanner{
			ID:       a.ID,
			Title:    a.Title,
			Content:  a.Content,
			ImageURL: a.ImageURL,
			LinkURL:  a.LinkURL,
		})
	}

	templates.Render(w, r, "library", vm)
}

func newVideoCard(v models.Video) videoCard {
	uploaded := ""
	if !v.UploadedAt.IsZero() {
		uploaded = v.UploadedAt.Format("Jan 2, 2006")
	}
	return videoCard{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		ThumbnailURL: v.ThumbnailURL,
		UploadedAt:   uploaded,
		Views:        v.Views,
		LikesCount:   v.LikesCount,
	}
}
