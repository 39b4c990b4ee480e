package fallback

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/utils"
)

func seedUnit(t *testing.T, s *Store, propID uuid.UUID, number string) *models.Unit {
	t.Helper()
	return s.CreateUnit(models.Unit{
		PropertyID: propID,
		UnitNumber: number,
		RentAmount: 500,
	})
}

func seedTenant(t *testing.T, s *Store, tenant models.Tenant) *models.Tenant {
	t.Helper()
	created, err := s.CreateTenant(tenant)
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func TestCreateTenantWithUnitMarksUnitOccupied(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	unit := seedUnit(t, s, propID, "1A")
	require.Equal(t, models.UnitAvailable, unit.Status)

	tenant := seedTenant(t, s, models.Tenant{
		FullName: "Kone Aminata",
		Email:    "kone.aminata@example.com",
		UnitID:   &unit.ID,
	})
	require.NotEqual(t, uuid.Nil, tenant.ID)

	got := s.GetUnit(unit.ID)
	require.Equal(t, models.UnitOccupied, got.Status)
}

func TestDeleteTenantReleasesUnit(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "2B")
	tenant := seedTenant(t, s, models.Tenant{FullName: "Traore Issa", UnitID: &unit.ID})

	require.True(t, s.DeleteTenant(tenant.ID))
	require.Equal(t, models.UnitAvailable, s.GetUnit(unit.ID).Status)
	require.Nil(t, s.GetTenant(tenant.ID))
}

func TestAssignTenantToUnitSwapsStatuses(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	first := seedUnit(t, s, propID, "1A")
	second := seedUnit(t, s, propID, "2A")
	tenant := seedTenant(t, s, models.Tenant{FullName: "Diabate Fanta", UnitID: &first.ID})

	moved, err := s.AssignTenantToUnit(tenant.ID, second.ID)
	require.NoError(t, err)
	require.NotNil(t, moved)
	require.Equal(t, second.ID, *moved.UnitID)
	require.Equal(t, models.UnitAvailable, s.GetUnit(first.ID).Status)
	require.Equal(t, models.UnitOccupied, s.GetUnit(second.ID).Status)
}

func TestAssignTenantToUnknownUnitIsRejected(t *testing.T) {
	s := NewStore()
	tenant := seedTenant(t, s, models.Tenant{FullName: "Yao Brice"})

	moved, err := s.AssignTenantToUnit(tenant.ID, uuid.New())
	require.NoError(t, err)
	require.Nil(t, moved)
	require.Nil(t, s.GetTenant(tenant.ID).UnitID)
}

func TestRemoveTenantFromUnit(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "RDC")
	tenant := seedTenant(t, s, models.Tenant{FullName: "Bamba Awa", UnitID: &unit.ID})

	removed := s.RemoveTenantFromUnit(tenant.ID)
	require.NotNil(t, removed)
	require.Nil(t, removed.UnitID)
	require.Equal(t, models.UnitAvailable, s.GetUnit(unit.ID).Status)
}

func TestCreateTenantRejectsOccupiedUnit(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "3B")
	first := seedTenant(t, s, models.Tenant{FullName: "Kone Aminata", UnitID: &unit.ID})

	second, err := s.CreateTenant(models.Tenant{FullName: "Traore Issa", UnitID: &unit.ID})
	require.ErrorIs(t, err, utils.ErrUnitOccupied)
	require.Nil(t, second)

	// The rejected create must leave nothing behind: the unit stays
	// occupied and still belongs to the first tenant.
	require.Equal(t, models.UnitOccupied, s.GetUnit(unit.ID).Status)
	require.Equal(t, unit.ID, *s.GetTenant(first.ID).UnitID)
	require.Len(t, s.ListTenants(TenantFilter{UnitID: &unit.ID}), 1)
}

func TestAssignTenantToOccupiedUnitIsRejected(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	taken := seedUnit(t, s, propID, "1A")
	free := seedUnit(t, s, propID, "2A")
	seedTenant(t, s, models.Tenant{FullName: "Diabate Fanta", UnitID: &taken.ID})
	mover := seedTenant(t, s, models.Tenant{FullName: "Yao Brice", UnitID: &free.ID})

	moved, err := s.AssignTenantToUnit(mover.ID, taken.ID)
	require.ErrorIs(t, err, utils.ErrUnitOccupied)
	require.Nil(t, moved)
	require.Equal(t, free.ID, *s.GetTenant(mover.ID).UnitID)
	require.Equal(t, models.UnitOccupied, s.GetUnit(free.ID).Status)
}

func TestAssignTenantToOwnUnitSucceeds(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "1A")
	tenant := seedTenant(t, s, models.Tenant{FullName: "Bamba Awa", UnitID: &unit.ID})

	moved, err := s.AssignTenantToUnit(tenant.ID, unit.ID)
	require.NoError(t, err)
	require.NotNil(t, moved)
	require.Equal(t, unit.ID, *moved.UnitID)
	require.Equal(t, models.UnitOccupied, s.GetUnit(unit.ID).Status)
}

func TestListUnitsNaturalOrder(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	for _, n := range []string{"10B", "2", "10A", "1A"} {
		seedUnit(t, s, propID, n)
	}

	units := s.ListUnits(UnitFilter{PropertyID: &propID})
	numbers := make([]string, len(units))
	for i, u := range units {
		numbers[i] = u.UnitNumber
	}
	require.Equal(t, []string{"1A", "2", "10A", "10B"}, numbers)
}

func TestListUnitsFiltersByStatus(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	occupied := seedUnit(t, s, propID, "1A")
	seedUnit(t, s, propID, "2A")
	seedTenant(t, s, models.Tenant{FullName: "Kouassi Jean", UnitID: &occupied.ID})

	status := models.UnitOccupied
	units := s.ListUnits(UnitFilter{PropertyID: &propID, Status: &status})
	require.Len(t, units, 1)
	require.Equal(t, "1A", units[0].UnitNumber)
}

func TestUpdateMaintenanceStatusStampsCompletedAt(t *testing.T) {
	s := NewStore()
	req := s.CreateMaintenanceRequest(models.MaintenanceRequest{
		UnitID: uuid.New(),
		Title:  "Fuite d'eau salle de bain",
	})
	require.Equal(t, models.MaintenancePending, req.Status)
	require.Nil(t, req.CompletedAt)

	moved := s.UpdateMaintenanceStatus(req.ID, models.MaintenanceInProgress, nil)
	require.Equal(t, models.MaintenanceInProgress, moved.Status)
	require.Nil(t, moved.CompletedAt, "only the completed transition stamps a time")

	done := s.UpdateMaintenanceStatus(req.ID, models.MaintenanceCompleted, nil)
	require.Equal(t, models.MaintenanceCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	// A second completed transition keeps the original stamp.
	stamp := *done.CompletedAt
	again := s.UpdateMaintenanceStatus(req.ID, models.MaintenanceCompleted, nil)
	require.True(t, again.CompletedAt.Equal(stamp))
}

func TestUpdateMaintenanceStatusHonoursExplicitCompletedAt(t *testing.T) {
	s := NewStore()
	req := s.CreateMaintenanceRequest(models.MaintenanceRequest{
		UnitID: uuid.New(),
		Title:  "Climatisation en panne",
	})

	explicit := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done := s.UpdateMaintenanceStatus(req.ID, models.MaintenanceCompleted, func(m *models.MaintenanceRequest) {
		m.CompletedAt = &explicit
	})
	require.True(t, done.CompletedAt.Equal(explicit))
}

func TestUpdateBumpsRowVersion(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "E1")
	require.Equal(t, int64(1), unit.RowVersion)

	updated := s.UpdateUnit(unit.ID, func(u *models.Unit) { u.RentAmount = 750 })
	require.Equal(t, int64(2), updated.RowVersion)
	require.Equal(t, 750.0, updated.RentAmount)
}

func TestReturnedValuesAreDetachedCopies(t *testing.T) {
	s := NewStore()
	unit := seedUnit(t, s, uuid.New(), "1A")

	unit.UnitNumber = "HACKED"
	require.Equal(t, "1A", s.GetUnit(unit.ID).UnitNumber)

	listed := s.ListUnits(UnitFilter{})
	listed[0].Status = models.UnitMaintenance
	require.Equal(t, models.UnitAvailable, s.GetUnit(unit.ID).Status)
}

// A concurrent reader must never observe a tenant move half-applied:
// at every instant exactly one of the two units is occupied.
func TestAssignTenantToUnitIsAtomicUnderConcurrentReads(t *testing.T) {
	s := NewStore()
	propID := uuid.New()
	first := seedUnit(t, s, propID, "1A")
	second := seedUnit(t, s, propID, "2A")
	tenant := seedTenant(t, s, models.Tenant{FullName: "Kone Aminata", UnitID: &first.ID})

	stop := make(chan struct{})
	var wg sync.WaitGroup
	var violations int32

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			units := s.ListUnits(UnitFilter{PropertyID: &propID})
			occupied := 0
			for _, u := range units {
				if u.Status == models.UnitOccupied {
					occupied++
				}
			}
			if occupied != 1 {
				violations++
			}
		}
	}()

	target := second.ID
	other := first.ID
	for i := 0; i < 200; i++ {
		moved, err := s.AssignTenantToUnit(tenant.ID, target)
		require.NoError(t, err)
		require.NotNil(t, moved)
		target, other = other, target
	}
	close(stop)
	wg.Wait()

	require.Zero(t, violations, "reader saw a half-applied tenant move")
}

func TestPropertyAndTransactionFilters(t *testing.T) {
	s := NewStore()
	owner := uuid.New()
	other := uuid.New()
	prop := s.CreateProperty(models.Property{OwnerID: owner, Name: "Résidence Riviera"})
	s.CreateProperty(models.Property{OwnerID: other, Name: "Immeuble Plateau"})

	mine := s.ListProperties(PropertyFilter{OwnerID: &owner})
	require.Len(t, mine, 1)
	require.Equal(t, "Résidence Riviera", mine[0].Name)

	s.CreateTransaction(models.Transaction{
		PropertyID: prop.ID,
		Type:       models.TransactionIncome,
		Amount:     350000,
	})
	s.CreateTransaction(models.Transaction{
		PropertyID: prop.ID,
		Type:       models.TransactionExpense,
		Amount:     45000,
	})

	income := models.TransactionIncome
	got := s.ListTransactions(TransactionFilter{PropertyID: &prop.ID, Type: &income})
	require.Len(t, got, 1)
	require.Equal(t, 350000.0, got[0].Amount)
}
