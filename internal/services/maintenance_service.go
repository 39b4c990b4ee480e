package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/fallback"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/notify"
	"github.com/casaflow/property-service/internal/repositories"
	"github.com/casaflow/property-service/internal/resilience"
	"github.com/casaflow/property-service/internal/utils"
)

// Mailer is the slice of notify.EmailSender the service needs.
type Mailer interface {
	Send(toEmail, toName, subject, body string)
}

type MaintenanceService struct {
	repo      repositories.MaintenanceRequestRepository
	fb        *fallback.Store
	policy    *resilience.Policy
	avail     *resilience.Availability
	notifier  notify.Notifier
	analytics *notify.Analytics

	// Optional email channel: completion notices go to the operations
	// address when configured.
	email       Mailer
	notifyEmail string
}

func NewMaintenanceService(
	repo repositories.MaintenanceRequestRepository,
	fb *fallback.Store,
	policy *resilience.Policy,
	avail *resilience.Availability,
	notifier notify.Notifier,
	analytics *notify.Analytics,
	email Mailer,
	notifyEmail string,
) *MaintenanceService {
	return &MaintenanceService{
		repo: repo, fb: fb, policy: policy, avail: avail,
		notifier: notifier, analytics: analytics,
		email: email, notifyEmail: notifyEmail,
	}
}

/* ---------- reads ---------- */

func (s *MaintenanceService) ListByUnit(ctx context.Context, unitID uuid.UUID) []*models.MaintenanceRequest {
	filter := fallback.MaintenanceFilter{UnitID: &unitID}
	if !s.avail.Available() {
		return s.fb.ListMaintenanceRequests(filter)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.MaintenanceRequest, error) {
			return s.repo.ListByUnitID(ctx, unitID)
		},
		func() []*models.MaintenanceRequest {
			s.avail.MarkDown()
			return s.fb.ListMaintenanceRequests(filter)
		})
}

func (s *MaintenanceService) ListByStatus(ctx context.Context, status models.MaintenanceStatus) []*models.MaintenanceRequest {
	filter := fallback.MaintenanceFilter{Status: &status}
	if !s.avail.Available() {
		return s.fb.ListMaintenanceRequests(filter)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.MaintenanceRequest, error) {
			return s.repo.ListByStatus(ctx, status)
		},
		func() []*models.MaintenanceRequest {
			s.avail.MarkDown()
			return s.fb.ListMaintenanceRequests(filter)
		})
}

func (s *MaintenanceService) GetByID(ctx context.Context, id uuid.UUID) *models.MaintenanceRequest {
	if !s.avail.Available() {
		return s.fb.GetMaintenanceRequest(id)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) (*models.MaintenanceRequest, error) {
			return s.repo.GetByID(ctx, id)
		},
		func() *models.MaintenanceRequest {
			s.avail.MarkDown()
			return s.fb.GetMaintenanceRequest(id)
		})
}

/* ---------- writes ---------- */

func (s *MaintenanceService) Create(ctx context.Context, m models.MaintenanceRequest) *models.MaintenanceRequest {
	m.ID = uuid.New()
	if m.Status == "" {
		m.Status = models.MaintenancePending
	}

	if !s.avail.Available() {
		created := s.fb.CreateMaintenanceRequest(m)
		s.notifier.Warn("Maintenance request saved locally; remote backend unavailable")
		return created
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		utils.Logger.WithError(err).Error("create maintenance request failed")
		s.notifier.Error("Failed to create maintenance request")
		return nil
	}
	s.analytics.Track("maintenance_created", map[string]any{"request_id": m.ID.String()})

	created, err := s.repo.GetByID(ctx, m.ID)
	if err != nil || created == nil {
		return &m
	}
	return created
}

// UpdateStatus moves the request to status, applying optional extra
// edits first. A transition to "completed" stamps CompletedAt with the
// current time when the edit did not supply one.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MaintenanceStatus, apply func(*models.MaintenanceRequest)) *models.MaintenanceRequest {
	var updated *models.MaintenanceRequest

	if !s.avail.Available() {
		updated = s.fb.UpdateMaintenanceStatus(id, status, apply)
	} else {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			utils.Logger.WithError(err).Error("load maintenance request failed")
			s.notifier.Error("Failed to update maintenance request")
			return nil
		}
		if current == nil {
			return nil
		}
		if apply != nil {
			apply(current)
		}
		current.ID = id
		current.Status = status
		if status == models.MaintenanceCompleted && current.CompletedAt == nil {
			now := nowUTC()
			current.CompletedAt = &now
		}
		if err := s.repo.Update(ctx, current); err != nil {
			utils.Logger.WithError(err).Error("update maintenance request failed")
			s.notifier.Error("Failed to update maintenance request")
			return nil
		}
		updated = current
	}

	if updated != nil && status == models.MaintenanceCompleted {
		s.analytics.Track("maintenance_completed", map[string]any{"request_id": id.String()})
		if s.email == nil || s.notifyEmail == "" {
			return updated
		}
		s.email.Send(
			s.notifyEmail, "Operations",
			fmt.Sprintf("Maintenance completed: %s", updated.Title),
			fmt.Sprintf("Request %q on unit %s was marked completed.", updated.Title, updated.UnitID),
		)
	}
	return updated
}

func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) bool {
	if !s.avail.Available() {
		return s.fb.DeleteMaintenanceRequest(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete maintenance request failed")
		s.notifier.Error("Failed to delete maintenance request")
		return false
	}
	return true
}
