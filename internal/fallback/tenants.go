package fallback

import (
	"sort"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/utils"
)

type TenantFilter struct {
	UnitID *uuid.UUID
}

// CreateTenant inserts the tenant and, when a unit reference is
// supplied, marks that unit occupied in the same critical section. A
// unit already referenced by another tenant is rejected with
// utils.ErrUnitOccupied; at most one active tenant holds a unit.
func (s *Store) CreateTenant(t models.Tenant) (*models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = orNewID(t.ID)
	if t.UnitID != nil && s.unitOccupied(*t.UnitID, t.ID) {
		return nil, utils.ErrUnitOccupied
	}
	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.RowVersion = 1
	s.tenants[t.ID] = &t

	if t.UnitID != nil {
		s.setUnitStatus(*t.UnitID, models.UnitOccupied)
	}
	return cloneTenant(&t), nil
}

func (s *Store) GetTenant(id uuid.UUID) *models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil
	}
	return cloneTenant(t)
}

func (s *Store) ListTenants(f TenantFilter) []*models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		if f.UnitID != nil && (t.UnitID == nil || *t.UnitID != *f.UnitID) {
			continue
		}
		out = append(out, cloneTenant(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

// UpdateTenant applies a partial mutation. Unit reassignment must go
// through AssignTenantToUnit / RemoveTenantFromUnit so the unit status
// invariant holds; mutate must leave UnitID alone.
func (s *Store) UpdateTenant(id uuid.UUID, mutate func(*models.Tenant)) *models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil
	}
	mutate(t)
	t.ID = id
	t.UpdatedAt = s.now()
	t.RowVersion++
	return cloneTenant(t)
}

// DeleteTenant removes the tenant and releases their unit, if any,
// back to "available".
func (s *Store) DeleteTenant(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return false
	}
	unitID := t.UnitID
	delete(s.tenants, id)
	if unitID != nil {
		s.setUnitStatus(*unitID, models.UnitAvailable)
	}
	return true
}

// AssignTenantToUnit moves the tenant onto newUnitID: the previous unit
// (if any) goes back to "available" and the new one becomes "occupied".
// All three mutations happen under one lock acquisition, so no reader
// sees both units occupied or both available. A unit held by another
// tenant is rejected with utils.ErrUnitOccupied; an unknown tenant or
// unit returns (nil, nil).
func (s *Store) AssignTenantToUnit(tenantID, newUnitID uuid.UUID) (*models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil, nil
	}
	if _, ok := s.units[newUnitID]; !ok {
		return nil, nil
	}
	if s.unitOccupied(newUnitID, tenantID) {
		return nil, utils.ErrUnitOccupied
	}

	previous := t.UnitID
	unitID := newUnitID
	t.UnitID = &unitID
	t.UpdatedAt = s.now()
	t.RowVersion++

	if previous != nil {
		s.setUnitStatus(*previous, models.UnitAvailable)
	}
	s.setUnitStatus(newUnitID, models.UnitOccupied)
	return cloneTenant(t), nil
}

// RemoveTenantFromUnit clears the tenant's unit reference and releases
// the unit back to "available".
func (s *Store) RemoveTenantFromUnit(tenantID uuid.UUID) *models.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil
	}
	previous := t.UnitID
	t.UnitID = nil
	t.UpdatedAt = s.now()
	t.RowVersion++

	if previous != nil {
		s.setUnitStatus(*previous, models.UnitAvailable)
	}
	return cloneTenant(t)
}
