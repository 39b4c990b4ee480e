package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type CreateTransactionRequest struct {
	PropertyID  uuid.UUID              `json:"property_id" validate:"required"`
	UnitID      *uuid.UUID             `json:"unit_id"`
	Type        models.TransactionType `json:"type" validate:"required,oneof=income expense"`
	Amount      float64                `json:"amount" validate:"required,gt=0"`
	Description string                 `json:"description" validate:"max=500"`
	OccurredAt  *time.Time             `json:"occurred_at"`
}

func (r CreateTransactionRequest) ToModel() models.Transaction {
	t := models.Transaction{
		PropertyID:  r.PropertyID,
		UnitID:      r.UnitID,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if r.OccurredAt != nil {
		t.OccurredAt = *r.OccurredAt
	}
	return t
}
