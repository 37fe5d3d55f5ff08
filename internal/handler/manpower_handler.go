package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
	"github.com/buildzy/be-workforce/internal/service"
)

// ManpowerHandler serves workforce member endpoints.
type ManpowerHandler struct {
	service *service.ManpowerService
	log     zerolog.Logger
}

func NewManpowerHandler(service *service.ManpowerService, log zerolog.Logger) *ManpowerHandler {
	return &ManpowerHandler{service: service, log: log}
}

// List handles GET /api/manpower and GET /api/subcontractors/{id}/manpower.
// The drill-down path parameter and the subcontractorId query parameter are
// interchangeable; both only take effect for admins.
func (h *ManpowerHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	target := r.URL.Query().Get("subcontractorId")
	if id := r.PathValue("id"); id != "" {
		target = id
	}

	filter := repository.ManpowerFilter{
		Search:           r.URL.Query().Get("search"),
		ApprovalStatus:   r.URL.Query().Get("approval_status"),
		AttendanceStatus: r.URL.Query().Get("attendance_status"),
	}

	items, err := h.service.List(r.Context(), principal, target, filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	views := make([]manpowerView, 0, len(items))
	for _, item := range items {
		views = append(views, manpowerToView(item))
	}

	writeData(w, http.StatusOK, views)
}

// Create handles POST /api/manpower.
func (h *ManpowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	item, err := h.service.Create(r.Context(), principal, req.Name)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, manpowerToView(item))
}

// Approve handles PUT /api/manpower/{id}/approve.
func (h *ManpowerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, repository.ApprovalApproved)
}

// Reject handles PUT /api/manpower/{id}/reject.
func (h *ManpowerHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, repository.ApprovalRejected)
}

func (h *ManpowerHandler) setApproval(w http.ResponseWriter, r *http.Request, status string) {
	if err := h.service.SetApproval(r.Context(), r.PathValue("id"), status); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeSuccess(w)
}

// Attendance handles PUT /api/manpower/{id}/attendance.
func (h *ManpowerHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	if err := h.service.MarkAttendance(r.Context(), principal, r.PathValue("id"), req.Status); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeSuccess(w)
}
