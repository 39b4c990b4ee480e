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

type UnitService struct {
	repo      repositories.UnitRepository
	fb        *fallback.Store
	policy    *resilience.Policy
	avail     *resilience.Availability
	notifier  notify.Notifier
	analytics *notify.Analytics
}

func NewUnitService(
	repo repositories.UnitRepository,
	fb *fallback.Store,
	policy *resilience.Policy,
	avail *resilience.Availability,
	notifier notify.Notifier,
	analytics *notify.Analytics,
) *UnitService {
	return &UnitService{repo: repo, fb: fb, policy: policy, avail: avail, notifier: notifier, analytics: analytics}
}

/* ---------- reads ---------- */

// ListByProperty returns the property's units ordered by unit number.
// A nil status means all statuses.
func (s *UnitService) ListByProperty(ctx context.Context, propID uuid.UUID, status *models.UnitStatus) []*models.Unit {
	filter := fallback.UnitFilter{PropertyID: &propID, Status: status}
	if !s.avail.Available() {
		return s.fb.ListUnits(filter)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.Unit, error) {
			if status != nil {
				return s.repo.ListByPropertyIDAndStatus(ctx, propID, *status)
			}
			return s.repo.ListByPropertyID(ctx, propID)
		},
		func() []*models.Unit {
			s.avail.MarkDown()
			return s.fb.ListUnits(filter)
		})
}

func (s *UnitService) GetByID(ctx context.Context, id uuid.UUID) *models.Unit {
	if !s.avail.Available() {
		return s.fb.GetUnit(id)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) (*models.Unit, error) {
			return s.repo.GetByID(ctx, id)
		},
		func() *models.Unit {
			s.avail.MarkDown()
			return s.fb.GetUnit(id)
		})
}

/* ---------- writes ---------- */

func (s *UnitService) Create(ctx context.Context, u models.Unit) *models.Unit {
	u.ID = uuid.New()
	if u.Status == "" {
		u.Status = models.UnitAvailable
	}

	if !s.avail.Available() {
		created := s.fb.CreateUnit(u)
		s.notifier.Warn("Unit saved locally; remote backend unavailable")
		return created
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		utils.Logger.WithError(err).Error("create unit failed")
		s.notifier.Error("Failed to create unit")
		return nil
	}
	s.analytics.Track("unit_created", map[string]any{"unit_id": u.ID.String()})

	created, err := s.repo.GetByID(ctx, u.ID)
	if err != nil || created == nil {
		return &u
	}
	return created
}

// Update applies a partial mutation. Status changes between
// available/occupied belong to the tenant operations; this path exists
// for rent, numbering and the explicit "maintenance" flag.
func (s *UnitService) Update(ctx context.Context, id uuid.UUID, apply func(*models.Unit)) *models.Unit {
	if !s.avail.Available() {
		return s.fb.UpdateUnit(id, apply)
	}

	err := s.repo.UpdateWithRetry(ctx, id, func(u *models.Unit) error {
		apply(u)
		return nil
	})
	if err != nil {
		utils.Logger.WithError(err).Error("update unit failed")
		s.notifier.Error("Failed to update unit")
		return nil
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return updated
}

func (s *UnitService) Delete(ctx context.Context, id uuid.UUID) bool {
	if !s.avail.Available() {
		return s.fb.DeleteUnit(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete unit failed")
		s.notifier.Error("Failed to delete unit")
		return false
	}
	return true
}
