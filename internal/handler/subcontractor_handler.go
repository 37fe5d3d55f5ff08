package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/buildzy/be-workforce/internal/apperr"
	"github.com/buildzy/be-workforce/internal/repository"
	"github.com/buildzy/be-workforce/internal/service"
)

// SubcontractorHandler serves subcontractor administration endpoints.
// All routes are admin-gated by the router.
type SubcontractorHandler struct {
	service *service.SubcontractorService
	log     zerolog.Logger
}

func NewSubcontractorHandler(service *service.SubcontractorService, log zerolog.Logger) *SubcontractorHandler {
	return &SubcontractorHandler{service: service, log: log}
}

// List handles GET /api/subcontractors.
func (h *SubcontractorHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.SubcontractorFilter{
		Search: r.URL.Query().Get("search"),
	}

	var err error
	if filter.MinManpower, err = optionalInt(r, "min_manpower"); err != nil {
		writeError(w, h.log, err)
		return
	}
	if filter.MaxManpower, err = optionalInt(r, "max_manpower"); err != nil {
		writeError(w, h.log, err)
		return
	}
	if filter.MinEquipment, err = optionalInt(r, "min_equipment"); err != nil {
		writeError(w, h.log, err)
		return
	}
	if filter.MaxEquipment, err = optionalInt(r, "max_equipment"); err != nil {
		writeError(w, h.log, err)
		return
	}

	subs, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	views := make([]subcontractorView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, subcontractorToView(sub))
	}

	writeData(w, http.StatusOK, views)
}

// Create handles POST /api/subcontractors: provisioning a login identity
// paired with a new profile.
func (h *SubcontractorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username      string  `json:"username"`
		Password      string  `json:"password"`
		CompanyName   string  `json:"companyName"`
		ContactPerson *string `json:"contactPerson"`
		PhoneNumber   *string `json:"phoneNumber"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	sub, err := h.service.Provision(r.Context(), req.Username, req.Password, req.CompanyName, req.ContactPerson, req.PhoneNumber)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, subcontractorToView(sub))
}

// Update handles PUT /api/subcontractors/{id}.
func (h *SubcontractorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyName   string  `json:"companyName"`
		ContactPerson *string `json:"contactPerson"`
		PhoneNumber   *string `json:"phoneNumber"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	sub, err := h.service.Update(r.Context(), r.PathValue("id"), req.CompanyName, req.ContactPerson, req.PhoneNumber)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeData(w, http.StatusOK, subcontractorToView(sub))
}

// Delete handles DELETE /api/subcontractors/{id}: the ordered, atomic removal
// of the profile and everything referencing it.
func (h *SubcontractorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeSuccess(w)
}

func optionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Validation("Invalid " + name)
	}
	return &n, nil
}
