package controllers

import (
	"net/http"

	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/utils"
)

type HealthController struct {
	avail *resilience.Availability
}

func NewHealthController(avail *resilience.Availability) *HealthController {
	return &HealthController{avail: avail}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":            "ok",
		"remote_configured": c.avail.Configured(),
		"remote_available":  c.avail.Available(),
	})
}
