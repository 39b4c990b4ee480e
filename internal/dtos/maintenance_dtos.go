package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type CreateMaintenanceRequest struct {
	UnitID      uuid.UUID  `json:"unit_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	AssignedTo  string     `json:"assigned_to" validate:"max=200"`
	ScheduledAt *time.Time `json:"scheduled_date"`
}

func (r CreateMaintenanceRequest) ToModel() models.MaintenanceRequest {
	return models.MaintenanceRequest{
		UnitID:        r.UnitID,
		Title:         r.Title,
		Description:   r.Description,
		AssignedTo:    r.AssignedTo,
		ScheduledDate: r.ScheduledAt,
		Status:        models.MaintenancePending,
	}
}

// UpdateMaintenanceStatusRequest drives the status transition endpoint.
// Extra fields ride along with the transition; CompletedAt may be
// supplied explicitly, otherwise a move to "completed" stamps it.
type UpdateMaintenanceStatusRequest struct {
	Status      models.MaintenanceStatus `json:"status" validate:"required,oneof=pending in_progress scheduled completed"`
	AssignedTo  *string                  `json:"assigned_to" validate:"omitempty,max=200"`
	ScheduledAt *time.Time               `json:"scheduled_date"`
	CompletedAt *time.Time               `json:"completed_at"`
}

func (r UpdateMaintenanceStatusRequest) Apply(m *models.MaintenanceRequest) {
	if r.AssignedTo != nil {
		m.AssignedTo = *r.AssignedTo
	}
	if r.ScheduledAt != nil {
		m.ScheduledDate = r.ScheduledAt
	}
	if r.CompletedAt != nil {
		m.CompletedAt = r.CompletedAt
	}
}
