package http

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/beacon/pkg/domain/interfaces"
	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/beacon/pkg/utils/logging"
)

const (
	msgNoReleases       = "No releases found."
	msgInternalError    = "Internal server error."
	msgNotFound         = "Not found."
	msgMethodNotAllowed = "Method not allowed."
)

// ReleaseHandler serves release metadata for auto-update clients
type ReleaseHandler struct {
	releaseUC interfaces.ReleaseUseCase
}

// NewReleaseHandler creates a new ReleaseHandler
func NewReleaseHandler(releaseUC interfaces.ReleaseUseCase) *ReleaseHandler {
	return &ReleaseHandler{
		releaseUC: releaseUC,
	}
}

// HandleLatest responds with the latest release, or 404 when no release exists
func (h *ReleaseHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	record, err := h.releaseUC.LatestRelease(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNoReleases) {
			writeMessage(w, r, http.StatusNotFound, msgNoReleases)
			return
		}

		logging.From(ctx).Error("Failed to look up latest release", "error", err)
		writeMessage(w, r, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, r, http.StatusOK, record)
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, http.StatusNotFound, msgNotFound)
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
