package fallback

import (
	"sort"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type MaintenanceFilter struct {
	UnitID *uuid.UUID
	Status *models.MaintenanceStatus
}

func (s *Store) CreateMaintenanceRequest(m models.MaintenanceRequest) *models.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = orNewID(m.ID)
	if m.Status == "" {
		m.Status = models.MaintenancePending
	}
	now := s.now()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.maintenance[m.ID] = &m
	return cloneMaintenance(&m)
}

func (s *Store) GetMaintenanceRequest(id uuid.UUID) *models.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.maintenance[id]
	if !ok {
		return nil
	}
	return cloneMaintenance(m)
}

func (s *Store) ListMaintenanceRequests(f MaintenanceFilter) []*models.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.MaintenanceRequest, 0, len(s.maintenance))
	for _, m := range s.maintenance {
		if f.UnitID != nil && m.UnitID != *f.UnitID {
			continue
		}
		if f.Status != nil && m.Status != *f.Status {
			continue
		}
		out = append(out, cloneMaintenance(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// UpdateMaintenanceRequest applies a partial mutation without touching
// the status transition rules.
func (s *Store) UpdateMaintenanceRequest(id uuid.UUID, mutate func(*models.MaintenanceRequest)) *models.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.maintenance[id]
	if !ok {
		return nil
	}
	mutate(m)
	m.ID = id
	m.UpdatedAt = s.now()
	return cloneMaintenance(m)
}

// UpdateMaintenanceStatus moves the request to status, applying any
// extra field edits via mutate (may be nil). A transition to
// "completed" stamps CompletedAt with the current time when the caller
// did not supply one; other transitions leave CompletedAt untouched.
func (s *Store) UpdateMaintenanceStatus(id uuid.UUID, status models.MaintenanceStatus, mutate func(*models.MaintenanceRequest)) *models.MaintenanceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.maintenance[id]
	if !ok {
		return nil
	}
	if mutate != nil {
		mutate(m)
	}
	m.ID = id
	m.Status = status
	if status == models.MaintenanceCompleted && m.CompletedAt == nil {
		done := s.now()
		m.CompletedAt = &done
	}
	m.UpdatedAt = s.now()
	return cloneMaintenance(m)
}

func (s *Store) DeleteMaintenanceRequest(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.maintenance[id]; !ok {
		return false
	}
	delete(s.maintenance, id)
	return true
}
