package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/middleware"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

var propertyValidate = validator.New()

type PropertyController struct {
	properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}
	props := c.properties.ListByOwner(r.Context(), session.UserID)
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// GET /api/v1/properties/{id}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p := c.properties.GetByID(r.Context(), id)
	if p == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}

	var req dtos.CreatePropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid property payload", nil, err)
		return
	}

	p := req.ToModel()
	p.OwnerID = session.UserID
	created := c.properties.Create(r.Context(), p)
	if created == nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeRemoteWrite, "Failed to create property", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid property payload", nil, err)
		return
	}

	updated := c.properties.Update(r.Context(), id, func(p *models.Property) { req.Apply(p) })
	if updated == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/properties/{id}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !c.properties.Delete(r.Context(), id) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
