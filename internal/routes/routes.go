package routes

const (
	// Health
	Health = "/health"

	// Landlord: properties
	Properties           = "/api/v1/properties"
	PropertyByID         = "/api/v1/properties/{id}"
	PropertyUnits        = "/api/v1/properties/{id}/units"
	PropertyTransactions = "/api/v1/properties/{id}/transactions"

	// Landlord: units
	Units           = "/api/v1/units"
	UnitByID        = "/api/v1/units/{id}"
	UnitMaintenance = "/api/v1/units/{id}/maintenance"

	// Landlord: tenants
	Tenants        = "/api/v1/tenants"
	TenantByID     = "/api/v1/tenants/{id}"
	TenantAssign   = "/api/v1/tenants/{id}/assign"
	TenantUnassign = "/api/v1/tenants/{id}/unassign"

	// Landlord: maintenance
	Maintenance       = "/api/v1/maintenance"
	MaintenanceByID   = "/api/v1/maintenance/{id}"
	MaintenanceStatus = "/api/v1/maintenance/{id}/status"

	// Landlord: finances
	Transactions     = "/api/v1/transactions"
	TransactionByID  = "/api/v1/transactions/{id}"
	DashboardSummary = "/api/v1/dashboard/summary"

	// Tenant self-service
	MyUnit        = "/api/v1/my/unit"
	MyPayments    = "/api/v1/my/payments"
	MyMaintenance = "/api/v1/my/maintenance"
)
