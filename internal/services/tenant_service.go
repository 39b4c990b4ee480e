package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/fallback"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/notify"
	"github.com/casaflow/property-service/internal/repositories"
	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/utils"
)

/*
TenantService owns the tenant↔unit transitions. The remote schema has
no trigger for them, so the service applies the same status flips the
fallback store applies internally: assigning a tenant releases the
previous unit to "available" and marks the new one "occupied".

On the remote path the unit flips use the optimistic-locking loop; the
tenant row is updated first so a crashed sequence at worst leaves a
stale unit status, never a double assignment.
*/
type TenantService struct {
	repo      repositories.TenantRepository
	units     repositories.UnitRepository
	fb        *fallback.Store
	policy    *resilience.Policy
	avail     *resilience.Availability
	notifier  notify.Notifier
	analytics *notify.Analytics
}

func NewTenantService(
	repo repositories.TenantRepository,
	units repositories.UnitRepository,
	fb *fallback.Store,
	policy *resilience.Policy,
	avail *resilience.Availability,
	notifier notify.Notifier,
	analytics *notify.Analytics,
) *TenantService {
	return &TenantService{repo: repo, units: units, fb: fb, policy: policy, avail: avail, notifier: notifier, analytics: analytics}
}

/* ---------- reads ---------- */

func (s *TenantService) List(ctx context.Context) []*models.Tenant {
	if !s.avail.Available() {
		return s.fb.ListTenants(fallback.TenantFilter{})
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.Tenant, error) {
			return s.repo.List(ctx)
		},
		func() []*models.Tenant {
			s.avail.MarkDown()
			return s.fb.ListTenants(fallback.TenantFilter{})
		})
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) *models.Tenant {
	if !s.avail.Available() {
		return s.fb.GetTenant(id)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) (*models.Tenant, error) {
			return s.repo.GetByID(ctx, id)
		},
		func() *models.Tenant {
			s.avail.MarkDown()
			return s.fb.GetTenant(id)
		})
}

// GetUnit resolves the tenant's current unit, nil when unassigned.
func (s *TenantService) GetUnit(ctx context.Context, tenant *models.Tenant) *models.Unit {
	if tenant == nil || tenant.UnitID == nil {
		return nil
	}
	unitID := *tenant.UnitID
	if !s.avail.Available() {
		return s.fb.GetUnit(unitID)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) (*models.Unit, error) {
			return s.units.GetByID(ctx, unitID)
		},
		func() *models.Unit {
			s.avail.MarkDown()
			return s.fb.GetUnit(unitID)
		})
}

/* ---------- writes ---------- */

// Create inserts the tenant; a supplied unit reference marks that unit
// occupied as part of the operation. A unit already referenced by
// another tenant is rejected with a conflict error on both paths.
func (s *TenantService) Create(ctx context.Context, t models.Tenant) (*models.Tenant, error) {
	t.ID = uuid.New()

	if !s.avail.Available() {
		created, err := s.fb.CreateTenant(t)
		if err != nil {
			return nil, occupiedError(err)
		}
		s.notifier.Warn("Tenant saved locally; remote backend unavailable")
		return created, nil
	}

	if t.UnitID != nil {
		occupant, err := s.repo.GetByUnitID(ctx, *t.UnitID)
		if err != nil {
			utils.Logger.WithError(err).Error("check unit occupancy failed")
			s.notifier.Error("Failed to create tenant")
			return nil, remoteWriteError("Failed to create tenant", err)
		}
		if occupant != nil {
			return nil, occupiedError(utils.ErrUnitOccupied)
		}
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		utils.Logger.WithError(err).Error("create tenant failed")
		s.notifier.Error("Failed to create tenant")
		return nil, remoteWriteError("Failed to create tenant", err)
	}
	if t.UnitID != nil {
		if err := s.setUnitStatusRemote(ctx, *t.UnitID, models.UnitOccupied); err != nil {
			utils.Logger.WithError(err).Error("mark unit occupied failed")
		}
	}
	s.analytics.Track("tenant_created", map[string]any{"tenant_id": t.ID.String()})

	created, err := s.repo.GetByID(ctx, t.ID)
	if err != nil || created == nil {
		return &t, nil
	}
	return created, nil
}

// Update applies a partial mutation to contact fields. Unit moves go
// through AssignToUnit / RemoveFromUnit.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, apply func(*models.Tenant)) *models.Tenant {
	if !s.avail.Available() {
		return s.fb.UpdateTenant(id, apply)
	}

	err := s.repo.UpdateWithRetry(ctx, id, func(t *models.Tenant) error {
		unitID := t.UnitID
		apply(t)
		t.UnitID = unitID
		return nil
	})
	if err != nil {
		utils.Logger.WithError(err).Error("update tenant failed")
		s.notifier.Error("Failed to update tenant")
		return nil
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return updated
}

// Delete removes the tenant and releases their unit back to "available".
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) bool {
	if !s.avail.Available() {
		return s.fb.DeleteTenant(id)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		utils.Logger.WithError(err).Error("load tenant for delete failed")
		s.notifier.Error("Failed to delete tenant")
		return false
	}
	if current == nil {
		return false
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete tenant failed")
		s.notifier.Error("Failed to delete tenant")
		return false
	}
	if current.UnitID != nil {
		if err := s.setUnitStatusRemote(ctx, *current.UnitID, models.UnitAvailable); err != nil {
			utils.Logger.WithError(err).Error("release unit failed")
		}
	}
	return true
}

// AssignToUnit moves the tenant onto newUnitID. Ordering: tenant row
// first, then the previous unit to "available", then the new unit to
// "occupied". A unit held by another tenant is rejected with a
// conflict error; an unknown tenant or unit returns (nil, nil).
func (s *TenantService) AssignToUnit(ctx context.Context, tenantID, newUnitID uuid.UUID) (*models.Tenant, error) {
	if !s.avail.Available() {
		moved, err := s.fb.AssignTenantToUnit(tenantID, newUnitID)
		if err != nil {
			return nil, occupiedError(err)
		}
		return moved, nil
	}

	current, err := s.repo.GetByID(ctx, tenantID)
	if err != nil || current == nil {
		return nil, nil
	}
	previous := current.UnitID

	occupant, err := s.repo.GetByUnitID(ctx, newUnitID)
	if err != nil {
		utils.Logger.WithError(err).Error("check unit occupancy failed")
		s.notifier.Error("Failed to assign tenant")
		return nil, remoteWriteError("Failed to assign tenant", err)
	}
	if occupant != nil && occupant.ID != tenantID {
		return nil, occupiedError(utils.ErrUnitOccupied)
	}

	err = s.repo.UpdateWithRetry(ctx, tenantID, func(t *models.Tenant) error {
		unitID := newUnitID
		t.UnitID = &unitID
		return nil
	})
	if err != nil {
		utils.Logger.WithError(err).Error("assign tenant failed")
		s.notifier.Error("Failed to assign tenant")
		return nil, remoteWriteError("Failed to assign tenant", err)
	}

	if previous != nil {
		if err := s.setUnitStatusRemote(ctx, *previous, models.UnitAvailable); err != nil {
			utils.Logger.WithError(err).Error("release previous unit failed")
		}
	}
	if err := s.setUnitStatusRemote(ctx, newUnitID, models.UnitOccupied); err != nil {
		utils.Logger.WithError(err).Error("mark unit occupied failed")
	}
	s.analytics.Track("tenant_assigned", map[string]any{
		"tenant_id": tenantID.String(),
		"unit_id":   newUnitID.String(),
	})

	updated, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, remoteWriteError("Failed to assign tenant", err)
	}
	return updated, nil
}

// RemoveFromUnit clears the tenant's unit reference and releases the
// unit.
func (s *TenantService) RemoveFromUnit(ctx context.Context, tenantID uuid.UUID) *models.Tenant {
	if !s.avail.Available() {
		return s.fb.RemoveTenantFromUnit(tenantID)
	}

	current, err := s.repo.GetByID(ctx, tenantID)
	if err != nil || current == nil {
		return nil
	}
	previous := current.UnitID

	err = s.repo.UpdateWithRetry(ctx, tenantID, func(t *models.Tenant) error {
		t.UnitID = nil
		return nil
	})
	if err != nil {
		utils.Logger.WithError(err).Error("unassign tenant failed")
		s.notifier.Error("Failed to unassign tenant")
		return nil
	}
	if previous != nil {
		if err := s.setUnitStatusRemote(ctx, *previous, models.UnitAvailable); err != nil {
			utils.Logger.WithError(err).Error("release unit failed")
		}
	}

	updated, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil
	}
	return updated
}

/* ---------- internals ---------- */

func (s *TenantService) setUnitStatusRemote(ctx context.Context, unitID uuid.UUID, status models.UnitStatus) error {
	return s.units.UpdateWithRetry(ctx, unitID, func(u *models.Unit) error {
		u.Status = status
		return nil
	})
}
