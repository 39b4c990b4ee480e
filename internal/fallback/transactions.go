package fallback

import (
	"sort"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type TransactionFilter struct {
	PropertyID *uuid.UUID
	UnitID     *uuid.UUID
	Type       *models.TransactionType
}

func (s *Store) CreateTransaction(t models.Transaction) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = orNewID(t.ID)
	now := s.now()
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}
	t.CreatedAt = now
	s.transactions[t.ID] = &t
	return cloneTransaction(&t)
}

func (s *Store) GetTransaction(id uuid.UUID) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return nil
	}
	return cloneTransaction(t)
}

// ListTransactions returns newest first.
func (s *Store) ListTransactions(f TransactionFilter) []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if f.PropertyID != nil && t.PropertyID != *f.PropertyID {
			continue
		}
		if f.UnitID != nil && (t.UnitID == nil || *t.UnitID != *f.UnitID) {
			continue
		}
		if f.Type != nil && t.Type != *f.Type {
			continue
		}
		out = append(out, cloneTransaction(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.After(out[j].OccurredAt)
		}
		return out[i].Description < out[j].Description
	})
	return out
}

func (s *Store) DeleteTransaction(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return false
	}
	delete(s.transactions, id)
	return true
}
