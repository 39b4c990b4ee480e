package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/property-service/internal/fallback"
	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/notify"
	"github.com/casaflow/property-service/internal/resilience"
)

type stubMaintenanceRepo struct {
	requests map[uuid.UUID]*models.MaintenanceRequest
	fail     bool
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{requests: make(map[uuid.UUID]*models.MaintenanceRequest)}
}

func (r *stubMaintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	if r.fail {
		return errRemoteDown
	}
	cp := *m
	r.requests[m.ID] = &cp
	return nil
}

func (r *stubMaintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	if r.fail {
		return nil, errRemoteDown
	}
	m, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *stubMaintenanceRepo) ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	if r.fail {
		return nil, errRemoteDown
	}
	out := make([]*models.MaintenanceRequest, 0)
	for _, m := range r.requests {
		if m.UnitID == unitID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubMaintenanceRepo) ListByStatus(ctx context.Context, status models.MaintenanceStatus) ([]*models.MaintenanceRequest, error) {
	if r.fail {
		return nil, errRemoteDown
	}
	out := make([]*models.MaintenanceRequest, 0)
	for _, m := range r.requests {
		if m.Status == status {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubMaintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	if r.fail {
		return errRemoteDown
	}
	if _, ok := r.requests[m.ID]; !ok {
		return errors.New("maintenance_request_not_found")
	}
	cp := *m
	r.requests[m.ID] = &cp
	return nil
}

func (r *stubMaintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.fail {
		return errRemoteDown
	}
	delete(r.requests, id)
	return nil
}

type stubMailer struct {
	sent []string
}

func (m *stubMailer) Send(toEmail, toName, subject, body string) {
	m.sent = append(m.sent, toEmail+": "+subject)
}

func newMaintenanceFixture(t *testing.T, configured bool) (*MaintenanceService, *stubMaintenanceRepo, *fallback.Store, *resilience.Availability) {
	t.Helper()
	repo := newStubMaintenanceRepo()
	fb := fallback.NewStore()
	avail := resilience.NewAvailability(configured)
	analytics := notify.NewAnalytics(16)
	t.Cleanup(analytics.Close)

	policy := &resilience.Policy{MaxRetries: 1, AttemptTimeout: time.Second, BackoffUnit: time.Millisecond}
	svc := NewMaintenanceService(repo, fb, policy, avail, noopNotifier{}, analytics, nil, "")
	return svc, repo, fb, avail
}

func TestMaintenanceUpdateStatusStampsCompletedAtRemotely(t *testing.T) {
	svc, repo, _, _ := newMaintenanceFixture(t, true)
	id := uuid.New()
	repo.requests[id] = &models.MaintenanceRequest{
		ID:     id,
		UnitID: uuid.New(),
		Title:  "Fuite d'eau",
		Status: models.MaintenanceInProgress,
	}

	updated := svc.UpdateStatus(context.Background(), id, models.MaintenanceCompleted, nil)
	require.NotNil(t, updated)
	require.Equal(t, models.MaintenanceCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	require.NotNil(t, repo.requests[id].CompletedAt, "stamp must be persisted")
}

func TestMaintenanceUpdateStatusKeepsExplicitCompletedAt(t *testing.T) {
	svc, repo, _, _ := newMaintenanceFixture(t, true)
	id := uuid.New()
	repo.requests[id] = &models.MaintenanceRequest{ID: id, Title: "Climatisation", Status: models.MaintenanceScheduled}

	explicit := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	updated := svc.UpdateStatus(context.Background(), id, models.MaintenanceCompleted, func(m *models.MaintenanceRequest) {
		m.CompletedAt = &explicit
	})
	require.NotNil(t, updated)
	require.True(t, updated.CompletedAt.Equal(explicit))
}

func TestMaintenanceUpdateStatusNonCompletedLeavesNoStamp(t *testing.T) {
	svc, repo, _, _ := newMaintenanceFixture(t, true)
	id := uuid.New()
	repo.requests[id] = &models.MaintenanceRequest{ID: id, Title: "Serrure", Status: models.MaintenancePending}

	updated := svc.UpdateStatus(context.Background(), id, models.MaintenanceInProgress, nil)
	require.NotNil(t, updated)
	require.Nil(t, updated.CompletedAt)
}

func TestMaintenanceUpdateStatusLocalWhenUnavailable(t *testing.T) {
	svc, repo, fb, _ := newMaintenanceFixture(t, false)
	created := fb.CreateMaintenanceRequest(models.MaintenanceRequest{UnitID: uuid.New(), Title: "Peinture"})

	updated := svc.UpdateStatus(context.Background(), created.ID, models.MaintenanceCompleted, nil)
	require.NotNil(t, updated)
	require.NotNil(t, updated.CompletedAt)
	require.Empty(t, repo.requests)
}

func TestMaintenanceUpdateStatusUnknownIDReturnsNil(t *testing.T) {
	svc, _, _, _ := newMaintenanceFixture(t, true)
	require.Nil(t, svc.UpdateStatus(context.Background(), uuid.New(), models.MaintenanceCompleted, nil))
}

func TestMaintenanceCompletionEmailsOperationsWhenConfigured(t *testing.T) {
	svc, repo, _, _ := newMaintenanceFixture(t, true)
	mailer := &stubMailer{}
	svc.email = mailer
	svc.notifyEmail = "ops@casaflow.app"

	id := uuid.New()
	repo.requests[id] = &models.MaintenanceRequest{ID: id, UnitID: uuid.New(), Title: "Fuite d'eau", Status: models.MaintenanceInProgress}

	require.NotNil(t, svc.UpdateStatus(context.Background(), id, models.MaintenanceCompleted, nil))
	require.Len(t, mailer.sent, 1)
	require.Contains(t, mailer.sent[0], "ops@casaflow.app")

	// Non-completion transitions stay quiet.
	require.NotNil(t, svc.UpdateStatus(context.Background(), id, models.MaintenanceInProgress, nil))
	require.Len(t, mailer.sent, 1)
}

func TestMaintenanceCompletionSkipsEmailWithoutRecipient(t *testing.T) {
	svc, repo, _, _ := newMaintenanceFixture(t, true)
	mailer := &stubMailer{}
	svc.email = mailer // sender configured, recipient not

	id := uuid.New()
	repo.requests[id] = &models.MaintenanceRequest{ID: id, UnitID: uuid.New(), Title: "Serrure", Status: models.MaintenanceInProgress}

	require.NotNil(t, svc.UpdateStatus(context.Background(), id, models.MaintenanceCompleted, nil))
	require.Empty(t, mailer.sent)
}

func TestMaintenanceCreateFallsToLocalStoreWhenUnavailable(t *testing.T) {
	svc, repo, fb, _ := newMaintenanceFixture(t, false)

	created := svc.Create(context.Background(), models.MaintenanceRequest{UnitID: uuid.New(), Title: "Portail"})
	require.NotNil(t, created)
	require.Equal(t, models.MaintenancePending, created.Status)
	require.Len(t, fb.ListMaintenanceRequests(fallback.MaintenanceFilter{}), 1)
	require.Empty(t, repo.requests)
}

func TestMaintenanceListByStatusFallsBackAndMarksDown(t *testing.T) {
	svc, repo, fb, avail := newMaintenanceFixture(t, true)
	fb.CreateMaintenanceRequest(models.MaintenanceRequest{UnitID: uuid.New(), Title: "Ascenseur", Status: models.MaintenancePending})
	repo.fail = true

	got := svc.ListByStatus(context.Background(), models.MaintenancePending)
	require.Len(t, got, 1)
	require.False(t, avail.Available())
}
