package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/service"
)

// DashboardHandler serves the aggregated counters endpoint.
type DashboardHandler struct {
	service *service.DashboardService
	log     zerolog.Logger
}

func NewDashboardHandler(service *service.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// Metrics handles GET /api/dashboard/metrics.
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	metrics, err := h.service.Metrics(r.Context(), principal)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusOK, metricsToView(metrics))
}
