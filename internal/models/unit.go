package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit represents a single rentable space inside a property. Status is
// "occupied" exactly when an active tenant references the unit, and
// "available" otherwise, unless a landlord has flagged it "maintenance".
type Unit struct {
	Versioned

	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	UnitNumber string     `json:"unit_number"`
	Status     UnitStatus `json:"status"`
	RentAmount float64    `json:"rent_amount"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (u *Unit) GetID() string { return u.ID.String() }
