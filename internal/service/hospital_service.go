package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anaesthesia-staffing-service/internal/models"
	"anaesthesia-staffing-service/internal/repository"

	"github.com/sirupsen/logrus"
)

// HospitalService keeps the full hospitals collection in memory, ordered by name,
// and writes through to the store.
type HospitalService struct {
	store     repository.HospitalStore
	auditRepo repository.AuditStore
	log       logrus.FieldLogger
	now       func() time.Time
	publish   func(Event)

	mu        sync.RWMutex
	hospitals []models.Hospital
	loading   bool
}

func NewHospitalService(
	store repository.HospitalStore,
	auditRepo repository.AuditStore,
	log logrus.FieldLogger,
) *HospitalService {
	return &HospitalService{
		store:     store,
		auditRepo: auditRepo,
		log:       log.WithField("collection", CollectionHospitals),
		now:       func() time.Time { return time.Now().UTC() },
		publish:   func(Event) {},
		loading:   true,
	}
}

// Load replaces the in-memory list with the whole collection.
// On failure the error is logged and the current list is kept.
func (s *HospitalService) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	hospitals, err := s.store.ListHospitals(ctx)
	if err != nil {
		s.log.WithError(err).Error("Error loading hospitals")
		return fmt.Errorf("failed to load hospitals: %w", err)
	}

	s.mu.Lock()
	s.hospitals = hospitals
	s.mu.Unlock()

	s.log.WithField("count", len(hospitals)).Debug("Hospitals loaded")
	s.publish(Event{Collection: CollectionHospitals, Kind: EventLoaded})
	return nil
}

// Hospitals returns a snapshot of the loaded hospitals
func (s *HospitalService) Hospitals() []models.Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hospitals := make([]models.Hospital, len(s.hospitals))
	copy(hospitals, s.hospitals)
	return hospitals
}

// Loading reports whether a full load is in progress (true until the first load finishes)
func (s *HospitalService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Find returns the loaded hospital with the given id
func (s *HospitalService) Find(id string) (models.Hospital, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hospital{}, false
}

// CreateHospital stores a new hospital and inserts it into the list in name order
func (s *HospitalService) CreateHospital(ctx context.Context, hospital models.Hospital, actor string) (models.Hospital, error) {
	now := s.now()
	hospital.ID = ""
	hospital.CreatedAt = now
	hospital.UpdatedAt = now

	if err := s.store.CreateHospital(ctx, &hospital); err != nil {
		s.log.WithError(err).Error("Error adding hospital")
		return models.Hospital{}, persistenceError("create", CollectionHospitals, "", err)
	}

	s.mu.Lock()
	s.hospitals = append(s.hospitals, hospital)
	models.SortHospitalsByName(s.hospitals)
	s.mu.Unlock()

	details := fmt.Sprintf("Created hospital: %s (ID: %s, allocation: %d)", hospital.Name, hospital.ID, hospital.Allocation)
	s.audit(ctx, actor, "hospital_create", details)
	s.publish(Event{Collection: CollectionHospitals, Kind: EventCreated, ID: hospital.ID})
	return hospital, nil
}

// UpdateHospital writes the provided fields and merges them into the loaded record.
// The returned bool is false when the hospital is not in the loaded list.
func (s *HospitalService) UpdateHospital(ctx context.Context, id string, patch models.HospitalPatch, actor string) (models.Hospital, bool, error) {
	patch.UpdatedAt = s.now()

	if err := s.store.UpdateHospital(ctx, id, patch); err != nil {
		s.log.WithError(err).WithField("hospital_id", id).Error("Error updating hospital")
		return models.Hospital{}, false, persistenceError("update", CollectionHospitals, id, err)
	}

	var (
		updated models.Hospital
		found   bool
	)
	s.mu.Lock()
	for i := range s.hospitals {
		if s.hospitals[i].ID == id {
			patch.Apply(&s.hospitals[i])
			updated, found = s.hospitals[i], true
			break
		}
	}
	models.SortHospitalsByName(s.hospitals)
	s.mu.Unlock()

	s.audit(ctx, actor, "hospital_update", fmt.Sprintf("Updated hospital ID: %s", id))
	s.publish(Event{Collection: CollectionHospitals, Kind: EventUpdated, ID: id})
	return updated, found, nil
}

// DeleteHospital removes the hospital. People assigned to it keep their reference.
func (s *HospitalService) DeleteHospital(ctx context.Context, id string, actor string) error {
	if err := s.store.DeleteHospital(ctx, id); err != nil {
		s.log.WithError(err).WithField("hospital_id", id).Error("Error deleting hospital")
		return persistenceError("delete", CollectionHospitals, id, err)
	}

	s.mu.Lock()
	kept := s.hospitals[:0:0]
	for _, h := range s.hospitals {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.hospitals = kept
	s.mu.Unlock()

	s.audit(ctx, actor, "hospital_delete", fmt.Sprintf("Deleted hospital ID: %s", id))
	s.publish(Event{Collection: CollectionHospitals, Kind: EventDeleted, ID: id})
	return nil
}

func (s *HospitalService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// audit is best effort: a failed audit write never fails the operation
func (s *HospitalService) audit(ctx context.Context, actor, action, details string) {
	if s.auditRepo == nil {
		return
	}
	if err := s.auditRepo.CreateAuditLog(ctx, actor, action, details); err != nil {
		s.log.WithError(err).WithField("action", action).Warn("Failed to write audit log")
	}
}
