package dtos

import (
	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type CreateUnitRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	UnitNumber string    `json:"unit_number" validate:"required,max=20"`
	RentAmount float64   `json:"rent_amount" validate:"gte=0"`
}

func (r CreateUnitRequest) ToModel() models.Unit {
	return models.Unit{
		PropertyID: r.PropertyID,
		UnitNumber: r.UnitNumber,
		RentAmount: r.RentAmount,
		Status:     models.UnitAvailable,
	}
}

type UpdateUnitRequest struct {
	UnitNumber *string  `json:"unit_number" validate:"omitempty,max=20"`
	RentAmount *float64 `json:"rent_amount" validate:"omitempty,gte=0"`
	// Only the "maintenance" flag may be toggled here; occupancy is
	// driven by tenant assignment.
	Status *models.UnitStatus `json:"status" validate:"omitempty,oneof=available maintenance"`
}

func (r UpdateUnitRequest) Apply(u *models.Unit) {
	if r.UnitNumber != nil {
		u.UnitNumber = *r.UnitNumber
	}
	if r.RentAmount != nil {
		u.RentAmount = *r.RentAmount
	}
	if r.Status != nil && u.Status != models.UnitOccupied {
		u.Status = *r.Status
	}
}
