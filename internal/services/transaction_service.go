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

type TransactionService struct {
	repo      repositories.TransactionRepository
	fb        *fallback.Store
	policy    *resilience.Policy
	avail     *resilience.Availability
	notifier  notify.Notifier
	analytics *notify.Analytics
}

func NewTransactionService(
	repo repositories.TransactionRepository,
	fb *fallback.Store,
	policy *resilience.Policy,
	avail *resilience.Availability,
	notifier notify.Notifier,
	analytics *notify.Analytics,
) *TransactionService {
	return &TransactionService{repo: repo, fb: fb, policy: policy, avail: avail, notifier: notifier, analytics: analytics}
}

/* ---------- reads ---------- */

func (s *TransactionService) ListByProperty(ctx context.Context, propID uuid.UUID) []*models.Transaction {
	filter := fallback.TransactionFilter{PropertyID: &propID}
	if !s.avail.Available() {
		return s.fb.ListTransactions(filter)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.Transaction, error) {
			return s.repo.ListByPropertyID(ctx, propID)
		},
		func() []*models.Transaction {
			s.avail.MarkDown()
			return s.fb.ListTransactions(filter)
		})
}

func (s *TransactionService) ListByUnit(ctx context.Context, unitID uuid.UUID) []*models.Transaction {
	filter := fallback.TransactionFilter{UnitID: &unitID}
	if !s.avail.Available() {
		return s.fb.ListTransactions(filter)
	}
	return resilience.Execute(ctx, s.policy,
		func(ctx context.Context) ([]*models.Transaction, error) {
			return s.repo.ListByUnitID(ctx, unitID)
		},
		func() []*models.Transaction {
			s.avail.MarkDown()
			return s.fb.ListTransactions(filter)
		})
}

/* ---------- writes ---------- */

func (s *TransactionService) Create(ctx context.Context, t models.Transaction) *models.Transaction {
	t.ID = uuid.New()
	if t.OccurredAt.IsZero() {
		t.OccurredAt = nowUTC()
	}

	if !s.avail.Available() {
		created := s.fb.CreateTransaction(t)
		s.notifier.Warn("Transaction saved locally; remote backend unavailable")
		return created
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		utils.Logger.WithError(err).Error("create transaction failed")
		s.notifier.Error("Failed to record transaction")
		return nil
	}
	s.analytics.Track("transaction_recorded", map[string]any{
		"transaction_id": t.ID.String(),
		"type":           string(t.Type),
	})
	return &t
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) bool {
	if !s.avail.Available() {
		return s.fb.DeleteTransaction(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		utils.Logger.WithError(err).Error("delete transaction failed")
		s.notifier.Error("Failed to delete transaction")
		return false
	}
	return true
}
