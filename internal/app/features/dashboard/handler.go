// Package dashboard serves the admin overview page and its chart APIs.
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	donationstore "github.com/geolearnhq/geolearn/internal/app/store/donations"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/store/queries/dashboardcounts"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler holds the dashboard feature dependencies.
type Handler struct {
	DB        *jsonstore.DB
	Donations *donationstore.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs the dashboard Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Donations: donationstore.New(db),
		ErrLog:    errLog,
		Log:       logger,
	}
}

type commentRow struct {
	UserEmail string
	Comment   string
	When      string
}

// DashboardVM is the view model for the admin overview page.
type DashboardVM struct {
	viewdata.BaseVM
	Counts           dashboardcounts.Counts
	DonationComments []commentRow
}

// ServeDashboard serves GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := dashboardcounts.Fetch(h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard counts", err, "Could not load the dashboard.", "/library")
		return
	}
	comments, err := h.Donations.List()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load donation comments", err, "Could not load the dashboard.", "/library")
		return
	}

	vm := DashboardVM{
		BaseVM: viewdata.NewBaseVM(r, "Admin Dashboard", "/library"),
		Counts: counts,
	}
	for _, c := range comments {
		vm.DonationComments = append(vm.DonationComments, commentRow{
			UserEmail: c.UserEmail,
			Comment:   c.Comment,
			When:      c.Timestamp.Format("Jan 2, 2006 15:04"),
		})
	}
	templates.Render(w, r, "dashboard", vm)
}
