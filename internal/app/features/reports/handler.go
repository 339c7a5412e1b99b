// Package reports serves the admin enrollment report.
package reports

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/geolearnhq/geolearn/internal/app/features/errors"
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
	"github.com/geolearnhq/geolearn/internal/app/store/queries/enrollmentreport"
	"github.com/geolearnhq/geolearn/internal/app/system/viewdata"
)

// Handler holds the reports feature dependencies.
type Handler struct {
	DB     *jsonstore.DB
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the reports Handler.
func NewHandler(db *jsonstore.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, ErrLog: errLog, Log: logger}
}

type reportRow struct {
	UserEmail      string
	UserUsername   string
	VideoTitle     string
	EnrolledAt     string
	SuggestionText string
}

// ReportVM is the view model for the enrollment report page.
type ReportVM struct {
	viewdata.BaseVM
	Rows []reportRow
}

// ServeEnrollments serves GET /admin/enrollments: every enrollment joined
// with its user, video, and suggestion.
func (h *Handler) ServeEnrollments(w http.ResponseWriter, r *http.Request) {
	rows, err := enrollmentreport.Build(h.DB)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build enrollment report", err, "Could not load the report.", "/admin")
		return
	}

	vm := ReportVM{BaseVM: viewdata.NewBaseVM(r, "Enrollment Report", "/admin")}
	for _, row := range rows {
		vm.Rows = append(vm.Rows, reportRow{
			UserEmail:      row.UserEmail,
			UserUsername:   row.UserUsername,
			VideoTitle:     row.VideoTitle,
			EnrolledAt:     row.EnrolledAt.Format("Jan 2, 2006 15:04"),
			SuggestionText: row.SuggestionText,
		})
	}
	templates.Render(w, r, "enrollment_report", vm)
}
