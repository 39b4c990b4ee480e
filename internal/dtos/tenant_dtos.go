package dtos

import (
	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type CreateTenantRequest struct {
	FullName    string     `json:"full_name" validate:"required,max=200"`
	Email       string     `json:"email" validate:"omitempty,email"`
	PhoneNumber string     `json:"phone_number" validate:"omitempty,max=30"`
	UnitID      *uuid.UUID `json:"unit_id"`
}

func (r CreateTenantRequest) ToModel() models.Tenant {
	return models.Tenant{
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		UnitID:      r.UnitID,
	}
}

type UpdateTenantRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
}

func (r UpdateTenantRequest) Apply(t *models.Tenant) {
	if r.FullName != nil {
		t.FullName = *r.FullName
	}
	if r.Email != nil {
		t.Email = *r.Email
	}
	if r.PhoneNumber != nil {
		t.PhoneNumber = *r.PhoneNumber
	}
}

type AssignTenantRequest struct {
	UnitID uuid.UUID `json:"unit_id" validate:"required"`
}

// TenantWithUnit is the projection the tenant list screens render: the
// base tenant plus the denormalized unit number. It is produced by an
// explicit mapping step, never by merging ad hoc fields onto the model.
type TenantWithUnit struct {
	models.Tenant
	UnitNumber string `json:"unit_number,omitempty"`
}

func NewTenantWithUnit(t models.Tenant, unit *models.Unit) TenantWithUnit {
	out := TenantWithUnit{Tenant: t}
	if unit != nil {
		out.UnitNumber = unit.UnitNumber
	}
	return out
}
