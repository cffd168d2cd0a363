package service

import (
	"context"
	"time"

	"anaesthesia-staffing-service/internal/coverage"
	"anaesthesia-staffing-service/internal/models"
	"anaesthesia-staffing-service/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DashboardTopHospitals is the number of hospitals listed on the dashboard
const DashboardTopHospitals = 5

// StaffingService is the single entry point over both collections. One instance
// is constructed at start-up and shared by every handler.
type StaffingService struct {
	Hospitals *HospitalService
	People    *PeopleService

	events *broker
	log    logrus.FieldLogger
}

func NewStaffingService(
	hospitalStore repository.HospitalStore,
	personStore repository.PersonStore,
	auditRepo repository.AuditStore,
	log logrus.FieldLogger,
	pageSize int,
) *StaffingService {
	events := newBroker()

	hospitals := NewHospitalService(hospitalStore, auditRepo, log)
	hospitals.publish = events.publish

	people := NewPeopleService(personStore, auditRepo, log, pageSize)
	people.publish = events.publish

	return &StaffingService{
		Hospitals: hospitals,
		People:    people,
		events:    events,
		log:       log,
	}
}

// Refresh reloads hospitals and the first page of people concurrently.
// A failure of one collection does not cancel the other.
func (s *StaffingService) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.Hospitals.Load(ctx) })
	g.Go(func() error { return s.People.Load(ctx) })
	return g.Wait()
}

// Subscribe returns a channel receiving an Event after every local state change,
// and a function that unsubscribes and closes the channel.
func (s *StaffingService) Subscribe(buffer int) (<-chan Event, func()) {
	return s.events.subscribe(buffer)
}

// CloseSubscriptions closes every subscriber channel so streaming clients finish
func (s *StaffingService) CloseSubscriptions() {
	s.events.closeAll()
}

// Loading reports whether either collection is still loading
func (s *StaffingService) Loading() bool {
	return s.Hospitals.Loading() || s.People.Loading()
}

// Coverage recomputes staffing metrics from the current snapshots
func (s *StaffingService) Coverage() coverage.Summary {
	return coverage.Compute(s.Hospitals.Hospitals(), s.People.People())
}

// Dashboard is the coverage summary with only the first hospitals listed
type Dashboard struct {
	coverage.Summary
	Loading bool `json:"loading"`
}

func (s *StaffingService) Dashboard() Dashboard {
	summary := s.Coverage()
	summary.Hospitals = summary.Top(DashboardTopHospitals)
	return Dashboard{Summary: summary, Loading: s.Loading()}
}

// HospitalRows returns the hospitals matching search with their coverage
func (s *StaffingService) HospitalRows(search string) []coverage.HospitalCoverage {
	hospitals := FilterHospitals(s.Hospitals.Hospitals(), search)
	counts := coverage.CountByHospital(s.People.People())

	rows := make([]coverage.HospitalCoverage, 0, len(hospitals))
	for _, h := range hospitals {
		rows = append(rows, coverage.ForHospital(h, counts[h.ID]))
	}
	return rows
}

// PersonRow is a person with the display names of their hospital and grade.
// AssignedSince is the start of the open timeline entry.
type PersonRow struct {
	models.Person
	HospitalName  string     `json:"hospital_name"`
	GradeLabel    string     `json:"grade_label"`
	GradeRank     int        `json:"grade_rank"`
	AssignedSince *time.Time `json:"assigned_since,omitempty"`
}

// PeopleRows returns the loaded people matching search with their hospital names
func (s *StaffingService) PeopleRows(search string) []PersonRow {
	byID := indexHospitals(s.Hospitals.Hospitals())
	people := FilterPeople(s.People.People(), search)

	rows := make([]PersonRow, 0, len(people))
	for _, p := range people {
		row := PersonRow{
			Person:       p,
			HospitalName: HospitalName(byID, p.HospitalIDOrEmpty()),
			GradeLabel:   p.CurrentGrade.Label(),
			GradeRank:    p.CurrentGrade.Rank(),
		}
		if entry, ok := OpenEntry(p.Timeline); ok {
			from := entry.From
			row.AssignedSince = &from
		}
		rows = append(rows, row)
	}
	return rows
}
