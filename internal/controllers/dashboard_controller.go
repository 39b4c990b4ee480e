package controllers

import (
	"net/http"

	"github.com/casaflow/property-service/internal/middleware"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GET /api/v1/dashboard/summary
func (c *DashboardController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil)
		return
	}
	summary := c.dashboard.SummaryForOwner(r.Context(), session.UserID)
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
