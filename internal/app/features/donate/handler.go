// Package donate collects supporter comments on the donation page.
package donate

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	donationstore "github.com/geolearnhq/geolearn/internal/app/store/donations"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/system/auth"
	"github.com/geolearnhq/geolearn/internal/app/system/metrics"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler holds the donate feature dependencies.
type Handler struct {
	Donations *donationstore.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs the donate Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
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

// DonateVM is the view model for the donation page.
type DonateVM struct {
	viewdata.BaseVM
	Notice   string
	Comments []commentRow
}

// ServeDonate serves GET /donate.
func (h *Handler) ServeDonate(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Donations.List()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load donation comments", err, "Could not load the donation page.", "/library")
		return
	}

	vm := DonateVM{BaseVM: viewdata.NewBaseVM(r, "Donate", "/library")}
	if query.Get(r, "thanks") == "1" {
		vm.Notice = "Thank you for your support!"
	}
	for _, c := range comments {
		vm.Comments = append(vm.Comments, commentRow{
			UserEmail: c.UserEmail,
			Comment:   c.Comment,
			When:      c.Timestamp.Format("Jan 2, 2006"),
		})
	}
	templates.Render(w, r, "donate", vm)
}

// HandleDonatePost serves POST /donate. A signed-in user's email is recorded
// with the comment; anonymous visitors can comment too.
func (h *Handler) HandleDonatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse donate form", err, "Invalid form data.", "/donate")
		return
	}

	comment := strings.TrimSpace(r.FormValue("comment"))
	if comment == "" {
		http.Redirect(w, r, "/donate", http.StatusSeeOther)
		return
	}

	email := ""
	if u, ok := auth.CurrentUser(r); ok {
		email = u.Email
	}
	if _, err := h.Donations.Add(email, comment); err != nil {
		h.ErrLog.LogServerError(w, r, "save donation comment", err, "Could not save your comment.", "/donate")
		return
	}
	metrics.DonationComments.Inc()
	http.Redirect(w, r, "/donate?thanks=1", http.StatusSeeOther)
}
