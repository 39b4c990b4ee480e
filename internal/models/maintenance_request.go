package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRequest tracks repair work against a unit. CompletedAt is
// stamped automatically when the status transitions to "completed".
type MaintenanceRequest struct {
	ID            uuid.UUID         `json:"id"`
	UnitID        uuid.UUID         `json:"unit_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        MaintenanceStatus `json:"status"`
	AssignedTo    string            `json:"assigned_to"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
