package controllers

import (
	"net/http"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/middleware"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

// MyController is the tenant self-service surface. The session user ID
// is the tenant ID; every lookup is scoped through it, so a tenant can
// only ever see their own unit, payments and maintenance.
type MyController struct {
	tenants      *services.TenantService
	transactions *services.TransactionService
	maintenance  *services.MaintenanceService
}

func NewMyController(
	tenants *services.TenantService,
	transactions *services.TransactionService,
	maintenance *services.MaintenanceService,
) *MyController {
	return &MyController{tenants: tenants, transactions: transactions, maintenance: maintenance}
}

// GET /api/v1/my/unit
func (c *MyController) UnitHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}
	tenant := c.tenants.GetByID(r.Context(), session.UserID)
	if tenant == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No tenant record for this user", nil)
		return
	}
	unit := c.tenants.GetUnit(r.Context(), tenant)
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewTenantWithUnit(*tenant, unit))
}

// GET /api/v1/my/payments
func (c *MyController) PaymentsHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}
	tenant := c.tenants.GetByID(r.Context(), session.UserID)
	if tenant == nil || tenant.UnitID == nil {
		utils.RespondWithJSON(w, http.StatusOK, []any{})
		return
	}
	txs := c.transactions.ListByUnit(r.Context(), *tenant.UnitID)
	utils.RespondWithJSON(w, http.StatusOK, txs)
}

// GET /api/v1/my/maintenance
func (c *MyController) MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}
	tenant := c.tenants.GetByID(r.Context(), session.UserID)
	if tenant == nil || tenant.UnitID == nil {
		utils.RespondWithJSON(w, http.StatusOK, []any{})
		return
	}
	reqs := c.maintenance.ListByUnit(r.Context(), *tenant.UnitID)
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}
