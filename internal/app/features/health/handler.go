// Package health exposes a liveness endpoint that also verifies the data
// directory is writable.
package health

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
)

// Handler holds the health feature dependencies.
type Handler struct {
	DB  *jsonstore.DB
	Log *zap.Logger
}

// NewHandler constructs the health Handler.
func NewHandler(db *jsonstore.DB, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type healthResult struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// ServeHealth serves GET /health. Storage is checked by writing and removing
// a probe file in the data directory.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	res := healthResult{Status: "ok", Storage: "ok"}
	status := http.StatusOK

	probe := filepath.Join(h.DB.Dir(), ".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		h.Log.Error("health probe write", zap.Error(err))
		res.Status = "degraded"
		res.Storage = "unwritable"
		status = http.StatusServiceUnavailable
	} else {
		_ = os.Remove(probe)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
