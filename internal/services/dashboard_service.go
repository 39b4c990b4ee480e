package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

// OwnerSummary is the landlord dashboard aggregate.
type OwnerSummary struct {
	Properties       int     `json:"properties"`
	Units            int     `json:"units"`
	OccupiedUnits    int     `json:"occupied_units"`
	AvailableUnits   int     `json:"available_units"`
	MaintenanceUnits int     `json:"maintenance_units"`
	PendingRequests  int     `json:"pending_requests"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
}

// DashboardService composes the other data-access sets; it inherits
// their fallback behaviour, so the summary always renders.
type DashboardService struct {
	properties   *PropertyService
	units        *UnitService
	maintenance  *MaintenanceService
	transactions *TransactionService
}

func NewDashboardService(
	properties *PropertyService,
	units *UnitService,
	maintenance *MaintenanceService,
	transactions *TransactionService,
) *DashboardService {
	return &DashboardService{
		properties:   properties,
		units:        units,
		maintenance:  maintenance,
		transactions: transactions,
	}
}

func (s *DashboardService) SummaryForOwner(ctx context.Context, ownerID uuid.UUID) OwnerSummary {
	var summary OwnerSummary

	props := s.properties.ListByOwner(ctx, ownerID)
	summary.Properties = len(props)

	for _, p := range props {
		for _, u := range s.units.ListByProperty(ctx, p.ID, nil) {
			summary.Units++
			switch u.Status {
			case models.UnitOccupied:
				summary.OccupiedUnits++
			case models.UnitAvailable:
				summary.AvailableUnits++
			case models.UnitMaintenance:
				summary.MaintenanceUnits++
			}
		}
		for _, t := range s.transactions.ListByProperty(ctx, p.ID) {
			switch t.Type {
			case models.TransactionIncome:
				summary.TotalIncome += t.Amount
			case models.TransactionExpense:
				summary.TotalExpense += t.Amount
			}
		}
	}

	summary.PendingRequests = len(s.maintenance.ListByStatus(ctx, models.MaintenancePending))
	return summary
}
