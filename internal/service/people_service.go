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

// DefaultPageSize is the number of people fetched per page
const DefaultPageSize = 10

// PeopleService keeps the pages of people loaded so far in memory and writes
// through to the store. Pages are ordered by last name; people created locally
// are prepended.
type PeopleService struct {
	store     repository.PersonStore
	auditRepo repository.AuditStore
	log       logrus.FieldLogger
	now       func() time.Time
	publish   func(Event)
	pageSize  int

	// pageMu serializes Load and LoadMore so a page is always fetched with
	// the cursor that belongs to the current list.
	pageMu sync.Mutex

	mu      sync.RWMutex
	people  []models.Person
	cursor  *repository.Cursor
	hasMore bool
	loading bool
}

func NewPeopleService(
	store repository.PersonStore,
	auditRepo repository.AuditStore,
	log logrus.FieldLogger,
	pageSize int,
) *PeopleService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PeopleService{
		store:     store,
		auditRepo: auditRepo,
		log:       log.WithField("collection", CollectionPeople),
		now:       func() time.Time { return time.Now().UTC() },
		publish:   func(Event) {},
		pageSize:  pageSize,
		hasMore:   true,
		loading:   true,
	}
}

// Load fetches the first page, replacing the list and resetting the cursor.
// On failure the error is logged and the current list is kept.
func (s *PeopleService) Load(ctx context.Context) error {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	page, err := s.store.PagePeople(ctx, nil, s.pageSize)
	if err != nil {
		s.log.WithError(err).Error("Error loading people")
		return fmt.Errorf("failed to load people: %w", err)
	}

	s.mu.Lock()
	s.people = page
	s.cursor = repository.CursorAfter(page)
	s.hasMore = len(page) == s.pageSize
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"count": len(page), "has_more": len(page) == s.pageSize}).Debug("People loaded")
	s.publish(Event{Collection: CollectionPeople, Kind: EventLoaded})
	return nil
}

// LoadMore fetches the page after the cursor and appends it. It does nothing
// when there is no further page or no cursor yet.
func (s *PeopleService) LoadMore(ctx context.Context) error {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	return s.loadMore(ctx)
}

// LoadMoreAfter is LoadMore for a caller that last saw the cursor token.
// It fails with ErrStaleCursor, without loading, when the list has moved on
// since; an empty token behaves like LoadMore.
func (s *PeopleService) LoadMoreAfter(ctx context.Context, token string) error {
	if token == "" {
		return s.LoadMore(ctx)
	}
	seen, err := repository.DecodeCursor(token)
	if err != nil {
		return err
	}

	s.pageMu.Lock()
	defer s.pageMu.Unlock()

	s.mu.RLock()
	current := s.cursor
	s.mu.RUnlock()
	if current == nil || *current != *seen {
		return ErrStaleCursor
	}
	return s.loadMore(ctx)
}

// loadMore requires pageMu
func (s *PeopleService) loadMore(ctx context.Context) error {
	s.mu.RLock()
	cursor, hasMore := s.cursor, s.hasMore
	s.mu.RUnlock()
	if !hasMore || cursor == nil {
		return nil
	}

	page, err := s.store.PagePeople(ctx, cursor, s.pageSize)
	if err != nil {
		s.log.WithError(err).WithField("cursor", cursor.Encode()).Error("Error loading more people")
		return fmt.Errorf("failed to load more people: %w", err)
	}

	s.mu.Lock()
	s.people = append(s.people, page...)
	s.cursor = repository.CursorAfter(page)
	s.hasMore = len(page) == s.pageSize
	s.mu.Unlock()

	s.publish(Event{Collection: CollectionPeople, Kind: EventLoaded})
	return nil
}

// People returns a snapshot of the loaded people
func (s *PeopleService) People() []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	people := make([]models.Person, len(s.people))
	for i, p := range s.people {
		people[i] = p.Clone()
	}
	return people
}

// HasMore reports whether another page may exist after the loaded ones
func (s *PeopleService) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasMore
}

// Cursor returns the token of the current pagination cursor, or "" when there is none
func (s *PeopleService) Cursor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cursor == nil {
		return ""
	}
	return s.cursor.Encode()
}

// Loading reports whether a fresh load is in progress (true until the first load finishes)
func (s *PeopleService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Find returns the loaded person with the given id
func (s *PeopleService) Find(id string) (models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Person{}, false
}

// CreatePerson stores a new person, seeding the timeline with the initial
// assignment, and prepends it to the list.
func (s *PeopleService) CreatePerson(ctx context.Context, person models.Person, actor string) (models.Person, error) {
	now := s.now()
	person.ID = ""
	person.CreatedAt = now
	person.UpdatedAt = now
	if len(person.Timeline) == 0 {
		person.Timeline = SeedTimeline(person.HospitalIDOrEmpty(), person.CurrentGrade, now)
	}

	if err := s.store.CreatePerson(ctx, &person); err != nil {
		s.log.WithError(err).Error("Error adding person")
		return models.Person{}, persistenceError("create", CollectionPeople, "", err)
	}

	s.mu.Lock()
	s.people = append([]models.Person{person.Clone()}, s.people...)
	s.mu.Unlock()

	details := fmt.Sprintf("Created person: %s (ID: %s, SLMC: %s)", person.FullName(), person.ID, person.SLMCNumber)
	s.audit(ctx, actor, "person_create", details)
	s.publish(Event{Collection: CollectionPeople, Kind: EventCreated, ID: person.ID})
	return person, nil
}

// UpdatePerson writes the provided fields and merges them into the loaded record
// in place. When the hospital or grade changes, the open timeline entry is closed
// and a new one appended in the same write.
func (s *PeopleService) UpdatePerson(ctx context.Context, id string, patch models.PersonPatch, actor string) (models.Person, error) {
	current, err := s.current(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("person_id", id).Error("Error reading person before update")
		return models.Person{}, persistenceError("update", CollectionPeople, id, err)
	}

	now := s.now()
	reassigned := AssignmentChanged(current, patch)
	if reassigned {
		hospitalID := current.HospitalIDOrEmpty()
		if patch.CurrentHospitalID != nil {
			hospitalID = *patch.CurrentHospitalID
		}
		grade := current.CurrentGrade
		if patch.CurrentGrade != nil {
			grade = *patch.CurrentGrade
		}
		patch.Timeline = ReassignTimeline(current.Timeline, hospitalID, grade, now)
	}
	patch.UpdatedAt = now

	if err := s.store.UpdatePerson(ctx, id, patch); err != nil {
		s.log.WithError(err).WithField("person_id", id).Error("Error updating person")
		return models.Person{}, persistenceError("update", CollectionPeople, id, err)
	}

	patch.Apply(&current)
	s.mu.Lock()
	for i := range s.people {
		if s.people[i].ID == id {
			patch.Apply(&s.people[i])
		}
	}
	s.mu.Unlock()

	action := "person_update"
	if reassigned {
		action = "person_reassign"
	}
	s.audit(ctx, actor, action, fmt.Sprintf("Updated person ID: %s", id))
	s.publish(Event{Collection: CollectionPeople, Kind: EventUpdated, ID: id})
	return current, nil
}

// DeletePerson removes the person from the store and the loaded list
func (s *PeopleService) DeletePerson(ctx context.Context, id string, actor string) error {
	if err := s.store.DeletePerson(ctx, id); err != nil {
		s.log.WithError(err).WithField("person_id", id).Error("Error deleting person")
		return persistenceError("delete", CollectionPeople, id, err)
	}

	s.mu.Lock()
	kept := make([]models.Person, 0, len(s.people))
	for _, p := range s.people {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.people = kept
	s.mu.Unlock()

	s.audit(ctx, actor, "person_delete", fmt.Sprintf("Deleted person ID: %s", id))
	s.publish(Event{Collection: CollectionPeople, Kind: EventDeleted, ID: id})
	return nil
}

// current returns the stored state of a person: the loaded copy when present,
// otherwise a read from the store.
func (s *PeopleService) current(ctx context.Context, id string) (models.Person, error) {
	if p, ok := s.Find(id); ok {
		return p, nil
	}
	p, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return models.Person{}, err
	}
	return *p, nil
}

func (s *PeopleService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *PeopleService) audit(ctx context.Context, actor, action, details string) {
	if s.auditRepo == nil {
		return
	}
	if err := s.auditRepo.CreateAuditLog(ctx, actor, action, details); err != nil {
		s.log.WithError(err).WithField("action", action).Warn("Failed to write audit log")
	}
}
