package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

var maintenanceValidate = validator.New()

type MaintenanceController struct {
	maintenance *services.MaintenanceService
}

func NewMaintenanceController(maintenance *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenance: maintenance}
}

// GET /api/v1/units/{id}/maintenance
func (c *MaintenanceController) ListByUnitHandler(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(w, r)
	if !ok {
		return
	}
	reqs := c.maintenance.ListByUnit(r.Context(), unitID)
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// GET /api/v1/maintenance?status=pending
func (c *MaintenanceController) ListByStatusHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		raw = string(models.MaintenancePending)
	}
	status, err := models.ParseMaintenanceStatus(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid status filter", nil, err)
		return
	}
	reqs := c.maintenance.ListByStatus(r.Context(), status)
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// GET /api/v1/maintenance/{id}
func (c *MaintenanceController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m := c.maintenance.GetByID(r.Context(), id)
	if m == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance request not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// POST /api/v1/maintenance
func (c *MaintenanceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMaintenanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := maintenanceValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid maintenance payload", nil, err)
		return
	}

	created := c.maintenance.Create(r.Context(), req.ToModel())
	if created == nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeRemoteWrite, "Failed to create maintenance request", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/maintenance/{id}/status
func (c *MaintenanceController) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateMaintenanceStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := maintenanceValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid status payload", nil, err)
		return
	}

	updated := c.maintenance.UpdateStatus(r.Context(), id, req.Status, func(m *models.MaintenanceRequest) { req.Apply(m) })
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance request not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/maintenance/{id}
func (c *MaintenanceController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !c.maintenance.Delete(r.Context(), id) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance request not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
