package fallback

import (
	"sort"

	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
)

type PropertyFilter struct {
	OwnerID *uuid.UUID
}

func (s *Store) CreateProperty(p models.Property) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = orNewID(p.ID)
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.properties[p.ID] = &p
	return cloneProperty(&p)
}

func (s *Store) GetProperty(id uuid.UUID) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return nil
	}
	return cloneProperty(p)
}

func (s *Store) ListProperties(f PropertyFilter) []*models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if f.OwnerID != nil && p.OwnerID != *f.OwnerID {
			continue
		}
		out = append(out, cloneProperty(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Store) UpdateProperty(id uuid.UUID, mutate func(*models.Property)) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return nil
	}
	mutate(p)
	p.ID = id
	p.UpdatedAt = s.now()
	return cloneProperty(p)
}

func (s *Store) DeleteProperty(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return false
	}
	delete(s.properties, id)
	return true
}
