package http

import (
	"net/http"

	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/beacon/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: types.ServiceName,
		Version: types.Version,
	}

	writeJSON(w, r, http.StatusOK, status)
}
