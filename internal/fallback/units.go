package fallback

import (
	"sort"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/utils"
)

type UnitFilter struct {
	PropertyID *uuid.UUID
	Status     *models.UnitStatus
}

func (s *Store) CreateUnit(u models.Unit) *models.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = orNewID(u.ID)
	if u.Status == "" {
		u.Status = models.UnitAvailable
	}
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.RowVersion = 1
	s.units[u.ID] = &u
	return cloneUnit(&u)
}

func (s *Store) GetUnit(id uuid.UUID) *models.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.units[id]
	if !ok {
		return nil
	}
	return cloneUnit(u)
}

// ListUnits filters by property and/or status; the result is ordered by
// unit number the way a human sorts them ("2" before "10A").
func (s *Store) ListUnits(f UnitFilter) []*models.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Unit, 0, len(s.units))
	for _, u := range s.units {
		if f.PropertyID != nil && u.PropertyID != *f.PropertyID {
			continue
		}
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		out = append(out, cloneUnit(u))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utils.NaturalLess(out[i].UnitNumber, out[j].UnitNumber)
	})
	return out
}

func (s *Store) UpdateUnit(id uuid.UUID, mutate func(*models.Unit)) *models.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.units[id]
	if !ok {
		return nil
	}
	mutate(u)
	u.ID = id
	u.UpdatedAt = s.now()
	u.RowVersion++
	return cloneUnit(u)
}

func (s *Store) DeleteUnit(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[id]; !ok {
		return false
	}
	delete(s.units, id)
	return true
}
