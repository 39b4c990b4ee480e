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
PropertyService is the data-access function set for properties.

Reads go through the resilient policy: the caller always gets a result,
live or from the local store, never an error. Writes branch instead:
with the remote down they land in the local store directly (no retry);
with the remote up a failed write is reported through the toast sink
and surfaces as a nil/false sentinel.
*/
type PropertyService struct {
	repo      repositories.PropertyRepository
	units     repositories.UnitRepository
	fb        *fallback.Store
	policy    *resilience.Policy
	avail     *resilience.Availability
	notifier  notify.Notifier
	analytics *notify.Analytics
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	units repositories.UnitRepository,
	fb *fallback.Store,
	policy *resilience.Policy,
	avail *resilience.Availability,
	notifier notify.Notifier,
	analytics *notify.Analytics,
) *PropertyService {
	return &PropertyService{repo: repo, units: units, fb: fb, policy: policy, avail: avail, notifier: notifier, analytics: analytics}
}

/* ---------- reads ---------- */

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) []*models.Property {
	if !s.avail.Available() {
		return s.fb.ListProperties(fallback.PropertyFilter{OwnerID: &ownerID})
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.Property, error) {
			return s.repo.ListByOwnerID(ctx, ownerID)
		},
		func() []*models.Property {
			s.avail.MarkDown()
			return s.fb.ListProperties(fallback.PropertyFilter{OwnerID: &ownerID})
		})
}

func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) *models.Property {
	if !s.avail.Available() {
		return s.fb.GetProperty(id)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) (*models.Property, error) {
			return s.repo.GetByID(ctx, id)
		},
		func() *models.Property {
			s.avail.MarkDown()
			return s.fb.GetProperty(id)
		})
}

/* ---------- writes ---------- */

func (s *PropertyService) Create(ctx context.Context, p models.Property) *models.Property {
	p.ID = uuid.New()

	if !s.avail.Available() {
		created := s.fb.CreateProperty(p)
		s.notifier.Warn("Property saved locally; remote backend unavailable")
		return created
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		utils.Logger.WithError(err).Error("create property failed")
		s.notifier.Error("Failed to create property")
		return nil
	}
	s.analytics.Track("property_created", map[string]any{"property_id": p.ID.String()})

	created, err := s.repo.GetByID(ctx, p.ID)
	if err != nil || created == nil {
		return &p
	}
	return created
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, apply func(*models.Property)) *models.Property {
	if !s.avail.Available() {
		return s.fb.UpdateProperty(id, apply)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		utils.Logger.WithError(err).Error("load property for update failed")
		s.notifier.Error("Failed to update property")
		return nil
	}
	if current == nil {
		return nil
	}
	apply(current)
	current.ID = id
	if err := s.repo.Update(ctx, current); err != nil {
		utils.Logger.WithError(err).Error("update property failed")
		s.notifier.Error("Failed to update property")
		return nil
	}
	return current
}

// Delete removes the property and its units (the remote schema cascades
// the same way).
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) bool {
	if !s.avail.Available() {
		for _, u := range s.fb.ListUnits(fallback.UnitFilter{PropertyID: &id}) {
			s.fb.DeleteUnit(u.ID)
		}
		return s.fb.DeleteProperty(id)
	}

	if err := s.units.DeleteByPropertyID(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete property units failed")
		s.notifier.Error("Failed to delete property")
		return false
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete property failed")
		s.notifier.Error("Failed to delete property")
		return false
	}
	s.analytics.Track("property_deleted", map[string]any{"property_id": id.String()})
	return true
}
