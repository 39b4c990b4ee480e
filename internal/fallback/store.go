package fallback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

/*
Store is the in-memory stand-in for the remote backend. It mirrors the
remote schema table for table and carries the same trigger-like side
effects (tenant assignment flips unit status, completing a maintenance
request stamps a completion time).

One mutex guards everything: each multi-entity mutation runs as a
single uninterrupted sequence, so a concurrent reader never observes a
half-applied tenant move. The store lives for the process only; nothing
is reconciled back to the remote backend.
*/
type Store struct {
	mu sync.Mutex

	properties   map[uuid.UUID]*models.Property
	units        map[uuid.UUID]*models.Unit
	tenants      map[uuid.UUID]*models.Tenant
	maintenance  map[uuid.UUID]*models.MaintenanceRequest
	transactions map[uuid.UUID]*models.Transaction

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		properties:   make(map[uuid.UUID]*models.Property),
		units:        make(map[uuid.UUID]*models.Unit),
		tenants:      make(map[uuid.UUID]*models.Tenant),
		maintenance:  make(map[uuid.UUID]*models.MaintenanceRequest),
		transactions: make(map[uuid.UUID]*models.Transaction),
		now:          time.Now,
	}
}

// ----- internals -----

func orNewID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func cloneProperty(p *models.Property) *models.Property {
	cp := *p
	return &cp
}

func cloneUnit(u *models.Unit) *models.Unit {
	cu := *u
	return &cu
}

func cloneTenant(t *models.Tenant) *models.Tenant {
	ct := *t
	if t.UnitID != nil {
		unitID := *t.UnitID
		ct.UnitID = &unitID
	}
	return &ct
}

func cloneMaintenance(m *models.MaintenanceRequest) *models.MaintenanceRequest {
	cm := *m
	if m.ScheduledDate != nil {
		d := *m.ScheduledDate
		cm.ScheduledDate = &d
	}
	if m.CompletedAt != nil {
		d := *m.CompletedAt
		cm.CompletedAt = &d
	}
	return &cm
}

func cloneTransaction(t *models.Transaction) *models.Transaction {
	ct := *t
	if t.UnitID != nil {
		unitID := *t.UnitID
		ct.UnitID = &unitID
	}
	return &ct
}

// unitOccupied reports whether a tenant other than exclude references
// unitID. The tenant map is the source of truth for occupancy, not the
// unit's status field. Caller must hold s.mu.
func (s *Store) unitOccupied(unitID, exclude uuid.UUID) bool {
	for id, t := range s.tenants {
		if id == exclude {
			continue
		}
		if t.UnitID != nil && *t.UnitID == unitID {
			return true
		}
	}
	return false
}

// setUnitStatus is the trigger-equivalent used by the tenant
// operations. Caller must hold s.mu.
func (s *Store) setUnitStatus(id uuid.UUID, status models.UnitStatus) {
	if u, ok := s.units[id]; ok {
		u.Status = status
		u.UpdatedAt = s.now()
	}
}
