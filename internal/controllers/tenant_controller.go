package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

var tenantValidate = validator.New()

type TenantController struct {
	tenants *services.TenantService
}

func NewTenantController(tenants *services.TenantService) *TenantController {
	return &TenantController{tenants: tenants}
}

// GET /api/v1/tenants
// Returns the TenantWithUnit projection so list screens can show unit
// numbers without a second round trip.
func (c *TenantController) ListHandler(w http.ResponseWriter, r *http.Request) {
	tenants := c.tenants.List(r.Context())
	out := make([]dtos.TenantWithUnit, 0, len(tenants))
	for _, t := range tenants {
		unit := c.tenants.GetUnit(r.Context(), t)
		out = append(out, dtos.NewTenantWithUnit(*t, unit))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GET /api/v1/tenants/{id}
func (c *TenantController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t := c.tenants.GetByID(r.Context(), id)
	if t == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
		return
	}
	unit := c.tenants.GetUnit(r.Context(), t)
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewTenantWithUnit(*t, unit))
}

// POST /api/v1/tenants
func (c *TenantController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid tenant payload", nil, err)
		return
	}

	created, err := c.tenants.Create(r.Context(), req.ToModel())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/tenants/{id}
func (c *TenantController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid tenant payload", nil, err)
		return
	}

	updated := c.tenants.Update(r.Context(), id, func(t *models.Tenant) { req.Apply(t) })
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// POST /api/v1/tenants/{id}/assign
func (c *TenantController) AssignHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.AssignTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid assignment payload", nil, err)
		return
	}

	updated, err := c.tenants.AssignToUnit(r.Context(), id, req.UnitID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant or unit not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// POST /api/v1/tenants/{id}/unassign
func (c *TenantController) UnassignHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	updated := c.tenants.RemoveFromUnit(r.Context(), id)
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/tenants/{id}
func (c *TenantController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !c.tenants.Delete(r.Context(), id) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
