package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/fallback"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/notify"
	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/routes"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

// Local-mode harness: availability is unconfigured, so every request is
// served entirely from the in-memory store and the nil repositories are
// never touched.
func newLocalModeServer(t *testing.T) (*httptest.Server, *fallback.Store) {
	t.Helper()

	fb := fallback.NewStore()
	avail := resilience.NewAvailability(false)
	analytics := notify.NewAnalytics(16)
	t.Cleanup(analytics.Close)
	policy := &resilience.Policy{MaxRetries: 0, AttemptTimeout: time.Second, BackoffUnit: time.Millisecond}

	tenantService := services.NewTenantService(nil, nil, fb, policy, avail, notify.NewLogNotifier(), analytics)
	unitService := services.NewUnitService(nil, fb, policy, avail, notify.NewLogNotifier(), analytics)

	tenantController := NewTenantController(tenantService)
	unitController := NewUnitController(unitService)

	router := mux.NewRouter()
	router.HandleFunc(routes.Units, unitController.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UnitByID, unitController.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Tenants, tenantController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Tenants, tenantController.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TenantByID, tenantController.DeleteHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.TenantUnassign, tenantController.UnassignHandler).Methods(http.MethodPost)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, fb
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestTenantLifecycleInLocalMode(t *testing.T) {
	srv, fb := newLocalModeServer(t)

	prop := fb.CreateProperty(models.Property{Name: "Résidence Riviera"})

	// Create unit 3B.
	var unit models.Unit
	status := doJSON(t, http.MethodPost, srv.URL+routes.Units, map[string]any{
		"property_id": prop.ID,
		"unit_number": "3B",
		"rent_amount": 350000,
	}, &unit)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, models.UnitAvailable, unit.Status)

	// Create a tenant assigned to 3B; the unit flips to occupied.
	var tenant models.Tenant
	status = doJSON(t, http.MethodPost, srv.URL+routes.Tenants, map[string]any{
		"full_name": "Kone Aminata",
		"email":     "kone.aminata@example.com",
		"unit_id":   unit.ID,
	}, &tenant)
	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, tenant.UnitID)

	var got models.Unit
	status = doJSON(t, http.MethodGet, srv.URL+fmt.Sprintf("/api/v1/units/%s", unit.ID), nil, &got)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.UnitOccupied, got.Status)

	// The list projection carries the unit number.
	var listed []dtos.TenantWithUnit
	status = doJSON(t, http.MethodGet, srv.URL+routes.Tenants, nil, &listed)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, listed, 1)
	require.Equal(t, "Kone Aminata", listed[0].FullName)
	require.Equal(t, "3B", listed[0].UnitNumber)

	// Unassigning releases the unit.
	var unassigned models.Tenant
	status = doJSON(t, http.MethodPost, srv.URL+fmt.Sprintf("/api/v1/tenants/%s/unassign", tenant.ID), nil, &unassigned)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, unassigned.UnitID)
	require.Equal(t, models.UnitAvailable, fb.GetUnit(unit.ID).Status)

	// Deleting the tenant leaves an empty list.
	status = doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/v1/tenants/%s", tenant.ID), nil, nil)
	require.Equal(t, http.StatusOK, status)

	listed = nil
	status = doJSON(t, http.MethodGet, srv.URL+routes.Tenants, nil, &listed)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, listed)
}

func TestTenantCreateOccupiedUnitReturnsConflict(t *testing.T) {
	srv, fb := newLocalModeServer(t)

	prop := fb.CreateProperty(models.Property{Name: "Résidence Riviera"})
	unit := fb.CreateUnit(models.Unit{PropertyID: prop.ID, UnitNumber: "3B"})
	sitting, err := fb.CreateTenant(models.Tenant{FullName: "Kone Aminata", UnitID: &unit.ID})
	require.NoError(t, err)

	var body utils.ErrorResponse
	status := doJSON(t, http.MethodPost, srv.URL+routes.Tenants, map[string]any{
		"full_name": "Traore Issa",
		"email":     "traore.issa@example.com",
		"unit_id":   unit.ID,
	}, &body)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, utils.ErrCodeUnitOccupied, body.Code)

	// The sitting tenant still holds the unit.
	require.Equal(t, unit.ID, *fb.GetTenant(sitting.ID).UnitID)
	require.Equal(t, models.UnitOccupied, fb.GetUnit(unit.ID).Status)
}

func TestTenantCreateRejectsInvalidPayload(t *testing.T) {
	srv, _ := newLocalModeServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+routes.Tenants, map[string]any{
		"email": "not-an-email",
	}, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestTenantDeleteUnknownIDReturnsNotFound(t *testing.T) {
	srv, _ := newLocalModeServer(t)

	status := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/tenants/5e0c1b2a-7d4f-4a39-9b1e-2f6a8c0d3e45", nil, nil)
	require.Equal(t, http.StatusNotFound, status)
}
