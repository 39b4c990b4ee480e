package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

var unitValidate = validator.New()

type UnitController struct {
	units *services.UnitService
}

func NewUnitController(units *services.UnitService) *UnitController {
	return &UnitController{units: units}
}

// GET /api/v1/properties/{id}/units?status=available
func (c *UnitController) ListByPropertyHandler(w http.ResponseWriter, r *http.Request) {
	propID, ok := pathID(w, r)
	if !ok {
		return
	}

	var status *models.UnitStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := models.ParseUnitStatus(raw)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid status filter", nil, err)
			return
		}
		status = &parsed
	}

	units := c.units.ListByProperty(r.Context(), propID, status)
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// GET /api/v1/units/{id}
func (c *UnitController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u := c.units.GetByID(r.Context(), id)
	if u == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Unit not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

// POST /api/v1/units
func (c *UnitController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUnitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid unit payload", nil, err)
		return
	}

	created := c.units.Create(r.Context(), req.ToModel())
	if created == nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeRemoteWrite, "Failed to create unit", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/units/{id}
func (c *UnitController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateUnitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid unit payload", nil, err)
		return
	}

	updated := c.units.Update(r.Context(), id, func(u *models.Unit) { req.Apply(u) })
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Unit not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/units/{id}
func (c *UnitController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !c.units.Delete(r.Context(), id) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Unit not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
