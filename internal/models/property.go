package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PropertyType string    `json:"property_type"`
	TotalUnits   int       `json:"total_units"`
	YearBuilt    int       `json:"year_built"`
	AreaSqm      float64   `json:"area_sqm"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
