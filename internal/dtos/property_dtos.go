package dtos

import (
	"github.com/casaflow/property-service/internal/models"
)

type CreatePropertyRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Address      string  `json:"address" validate:"required,max=500"`
	PropertyType string  `json:"property_type" validate:"required,max=100"`
	TotalUnits   int     `json:"total_units" validate:"gte=0"`
	YearBuilt    int     `json:"year_built" validate:"omitempty,gte=1800,lte=2100"`
	AreaSqm      float64 `json:"area_sqm" validate:"gte=0"`
	Description  string  `json:"description" validate:"max=2000"`
}

func (r CreatePropertyRequest) ToModel() models.Property {
	return models.Property{
		Name:         r.Name,
		Address:      r.Address,
		PropertyType: r.PropertyType,
		TotalUnits:   r.TotalUnits,
		YearBuilt:    r.YearBuilt,
		AreaSqm:      r.AreaSqm,
		Description:  r.Description,
	}
}

// UpdatePropertyRequest is a partial update; nil fields are untouched.
type UpdatePropertyRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=200"`
	Address      *string  `json:"address" validate:"omitempty,max=500"`
	PropertyType *string  `json:"property_type" validate:"omitempty,max=100"`
	TotalUnits   *int     `json:"total_units" validate:"omitempty,gte=0"`
	YearBuilt    *int     `json:"year_built" validate:"omitempty,gte=1800,lte=2100"`
	AreaSqm      *float64 `json:"area_sqm" validate:"omitempty,gte=0"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
}

func (r UpdatePropertyRequest) Apply(p *models.Property) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.PropertyType != nil {
		p.PropertyType = *r.PropertyType
	}
	if r.TotalUnits != nil {
		p.TotalUnits = *r.TotalUnits
	}
	if r.YearBuilt != nil {
		p.YearBuilt = *r.YearBuilt
	}
	if r.AreaSqm != nil {
		p.AreaSqm = *r.AreaSqm
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
}
