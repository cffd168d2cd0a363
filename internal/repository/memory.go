package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"anaesthesia-staffing-service/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps both collections and the audit trail in memory for tests/dev.
// It honours the same contract as the gorm repositories.
type MemoryStore struct {
	mu        sync.RWMutex
	hospitals map[string]models.Hospital
	people    map[string]models.Person
	audit     []models.AuditLog
}

// NewMemoryStore constructs an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		hospitals: make(map[string]models.Hospital),
		people:    make(map[string]models.Person),
	}
}

func (s *MemoryStore) ListHospitals(_ context.Context) ([]models.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hospitals := make([]models.Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		hospitals = append(hospitals, h)
	}
	sort.Slice(hospitals, func(i, j int) bool {
		return hospitals[i].ID < hospitals[j].ID
	})
	models.SortHospitalsByName(hospitals)
	return hospitals, nil
}

func (s *MemoryStore) CreateHospital(_ context.Context, hospital *models.Hospital) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hospital.ID == "" {
		hospital.ID = uuid.NewString()
	}
	if _, exists := s.hospitals[hospital.ID]; exists {
		return fmt.Errorf("hospital %s already exists", hospital.ID)
	}
	s.hospitals[hospital.ID] = *hospital
	return nil
}

func (s *MemoryStore) UpdateHospital(_ context.Context, id string, patch models.HospitalPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	hospital, ok := s.hospitals[id]
	if !ok {
		return ErrNotFound
	}
	patch.Apply(&hospital)
	s.hospitals[id] = hospital
	return nil
}

func (s *MemoryStore) DeleteHospital(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hospitals[id]; !ok {
		return ErrNotFound
	}
	delete(s.hospitals, id)
	return nil
}

func (s *MemoryStore) PagePeople(_ context.Context, after *Cursor, limit int) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	people := make([]models.Person, 0, len(s.people))
	for _, p := range s.people {
		if after != nil && !after.After(p) {
			continue
		}
		people = append(people, p.Clone())
	}
	sort.Slice(people, func(i, j int) bool {
		if people[i].LastName != people[j].LastName {
			return people[i].LastName < people[j].LastName
		}
		return people[i].ID < people[j].ID
	})
	if limit > 0 && len(people) > limit {
		people = people[:limit]
	}
	return people, nil
}

func (s *MemoryStore) GetPerson(_ context.Context, id string) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := p.Clone()
	return &clone, nil
}

func (s *MemoryStore) CreatePerson(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if person.ID == "" {
		person.ID = uuid.NewString()
	}
	if _, exists := s.people[person.ID]; exists {
		return fmt.Errorf("person %s already exists", person.ID)
	}
	s.people[person.ID] = person.Clone()
	return nil
}

func (s *MemoryStore) UpdatePerson(_ context.Context, id string, patch models.PersonPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	person, ok := s.people[id]
	if !ok {
		return ErrNotFound
	}
	patch.Apply(&person)
	s.people[id] = person
	return nil
}

func (s *MemoryStore) DeletePerson(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	delete(s.people, id)
	return nil
}

func (s *MemoryStore) CreateAuditLog(_ context.Context, actor, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, models.AuditLog{
		ID:        uint(len(s.audit) + 1),
		Actor:     actor,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// AuditLogs returns a copy of the recorded audit trail in insertion order
func (s *MemoryStore) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logs := make([]models.AuditLog, len(s.audit))
	copy(logs, s.audit)
	return logs
}
