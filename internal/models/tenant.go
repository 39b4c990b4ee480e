package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant may be unassigned; UnitID is nil in that case. At most one
// active tenant references a given unit at a time.
type Tenant struct {
	Versioned

	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	UnitID      *uuid.UUID `json:"unit_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Tenant) GetID() string { return t.ID.String() }
