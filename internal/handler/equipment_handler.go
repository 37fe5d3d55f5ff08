package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/auth"
	"github.com/buildzy/be-workforce/internal/repository"
	"github.com/buildzy/be-workforce/internal/service"
)

// EquipmentHandler serves equipment unit endpoints.
type EquipmentHandler struct {
	service *service.EquipmentService
	log     zerolog.Logger
}

func NewEquipmentHandler(service *service.EquipmentService, log zerolog.Logger) *EquipmentHandler {
	return &EquipmentHandler{service: service, log: log}
}

// List handles GET /api/equipment and GET /api/subcontractors/{id}/equipment.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	target := r.URL.Query().Get("subcontractorId")
	if id := r.PathValue("id"); id != "" {
		target = id
	}

	filter := repository.EquipmentFilter{
		Search:           r.URL.Query().Get("search"),
		ApprovalStatus:   r.URL.Query().Get("approval_status"),
		DeploymentStatus: r.URL.Query().Get("deployment_status"),
	}

	items, err := h.service.List(r.Context(), principal, target, filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	views := make([]equipmentView, 0, len(items))
	for _, item := range items {
		views = append(views, equipmentToView(item))
	}

	writeData(w, http.StatusOK, views)
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthorized("Missing or invalid authorization header"))
		return
	}

	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	item, err := h.service.Create(r.Context(), principal, req.Name, req.Type)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, equipmentToView(item))
}

// Approve handles PUT /api/equipment/{id}/approve.
func (h *EquipmentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, repository.ApprovalApproved)
}

// Reject handles PUT /api/equipment/{id}/reject.
func (h *EquipmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, repository.ApprovalRejected)
}

func (h *EquipmentHandler) setApproval(w http.ResponseWriter, r *http.Request, status string) {
	if err := h.service.SetApproval(r.Context(), r.PathValue("id"), status); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeSuccess(w)
}

// Status handles PUT /api/equipment/{id}/status.
func (h *EquipmentHandler) Status(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.SetStatus(r.Context(), principal, r.PathValue("id"), req.Status); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeSuccess(w)
}
