// Package terms serves the static terms-of-service and privacy pages.
package terms

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler serves the legal pages. It has no dependencies beyond templates.
type Handler struct{}

// NewHandler constructs the terms Handler.
func NewHandler() *Handler { return &Handler{} }

type pageVM struct {
	viewdata.BaseVM
}

// ServeTerms serves GET /terms.
func (h *Handler) ServeTerms(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "terms", pageVM{
		BaseVM: viewdata.NewBaseVM(r, "Terms of Service", "/library"),
	})
}

// ServePrivacy serves GET /privacy.
func (h *Handler) ServePrivacy(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "privacy", pageVM{
		BaseVM: viewdata.NewBaseVM(r, "Privacy Policy", "/library"),
	})
}
