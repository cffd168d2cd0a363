package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"anaesthesia-staffing-service/internal/models"
	"anaesthesia-staffing-service/internal/repository"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func strPtr(s string) *string { return &s }

func gradePtr(g models.Grade) *models.Grade { return &g }

func newHospital(name string, allocation int) models.Hospital {
	return models.Hospital{
		Name:       name,
		Province:   "Western",
		District:   "Colombo",
		Type:       models.HospitalTypeBase,
		Allocation: allocation,
	}
}

func newPerson(first, last, hospitalID string, grade models.Grade) models.Person {
	p := models.Person{
		FirstName:    first,
		LastName:     last,
		SLMCNumber:   "SLMC-" + last,
		CurrentGrade: grade,
	}
	if hospitalID != "" {
		p.CurrentHospitalID = strPtr(hospitalID)
	}
	return p
}

// seedPeople stores n people named Person00..Person(n-1) directly in the store
func seedPeople(t *testing.T, store *repository.MemoryStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		p := newPerson("First", fmt.Sprintf("Person%02d", i), "", models.GradeMO)
		p.ID = fmt.Sprintf("p-%02d", i)
		require.NoError(t, store.CreatePerson(context.Background(), &p))
	}
}

func lastNames(people []models.Person) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.LastName)
	}
	return names
}

func hospitalNames(hospitals []models.Hospital) []string {
	names := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		names = append(names, h.Name)
	}
	return names
}
