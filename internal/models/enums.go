package models

import "fmt"

// ------------------------------------------------------------------------
// UnitStatus enumerates the occupancy state of a unit.
// ------------------------------------------------------------------------
type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
)

// ParseUnitStatus converts strings ("available", "occupied", "maintenance") to the enum.
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch UnitStatus(s) {
	case UnitAvailable, UnitOccupied, UnitMaintenance:
		return UnitStatus(s), nil
	default:
		return "", fmt.Errorf("invalid unit status: %q", s)
	}
}

// ------------------------------------------------------------------------
// MaintenanceStatus enumerates the lifecycle of a maintenance request.
// ------------------------------------------------------------------------
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch MaintenanceStatus(s) {
	case MaintenancePending, MaintenanceInProgress, MaintenanceScheduled, MaintenanceCompleted:
		return MaintenanceStatus(s), nil
	default:
		return "", fmt.Errorf("invalid maintenance status: %q", s)
	}
}

// ------------------------------------------------------------------------
// TransactionType splits the ledger into money in and money out.
// ------------------------------------------------------------------------
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionIncome, TransactionExpense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("invalid transaction type: %q", s)
	}
}

// ------------------------------------------------------------------------
// Role enumerates who is calling the API.
// ------------------------------------------------------------------------
type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleLandlord, RoleTenant:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}
