package service

import (
	"testing"
	"time"

	"anaesthesia-staffing-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTimeline(t *testing.T) {
	timeline := SeedTimeline("h-1", models.GradeRegistrar, t0)

	require.Len(t, timeline, 1)
	assert.True(t, timeline[0].IsOpen())
	assert.Equal(t, t0, timeline[0].From)
	assert.Equal(t, "h-1", timeline[0].HospitalID)
	assert.Equal(t, models.GradeRegistrar, timeline[0].Grade)
	assert.Equal(t, InitialAssignmentNote, timeline[0].Note)
}

func TestAssignmentChanged(t *testing.T) {
	current := newPerson("Ann", "Perera", "h-1", models.GradeMO)
	unassigned := newPerson("Ben", "Silva", "", models.GradeMO)

	tests := []struct {
		name    string
		current models.Person
		patch   models.PersonPatch
		want    bool
	}{
		{"no assignment fields", current, models.PersonPatch{FirstName: strPtr("Anne")}, false},
		{"same hospital", current, models.PersonPatch{CurrentHospitalID: strPtr("h-1")}, false},
		{"same grade", current, models.PersonPatch{CurrentGrade: gradePtr(models.GradeMO)}, false},
		{"new hospital", current, models.PersonPatch{CurrentHospitalID: strPtr("h-2")}, true},
		{"unassign", current, models.PersonPatch{CurrentHospitalID: strPtr("")}, true},
		{"new grade", current, models.PersonPatch{CurrentGrade: gradePtr(models.GradeConsultant)}, true},
		{"assign unassigned", unassigned, models.PersonPatch{CurrentHospitalID: strPtr("h-3")}, true},
		{"unassigned stays unassigned", unassigned, models.PersonPatch{CurrentHospitalID: strPtr("")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignmentChanged(tt.current, tt.patch))
		})
	}
}

func TestReassignTimeline(t *testing.T) {
	later := t0.Add(48 * time.Hour)
	closedAt := t0.Add(-time.Hour)
	original := []models.TimelineEntry{
		{From: t0.Add(-24 * time.Hour), To: &closedAt, HospitalID: "h-0", Grade: models.GradeMO},
		{From: t0, HospitalID: "h-1", Grade: models.GradeMO, Note: InitialAssignmentNote},
	}

	updated := ReassignTimeline(original, "h-2", models.GradeRegistrar, later)

	require.Len(t, updated, 3)
	assert.Equal(t, closedAt, *updated[0].To, "closed entries keep their end")
	require.NotNil(t, updated[1].To)
	assert.Equal(t, later, *updated[1].To)
	assert.Equal(t, later, updated[2].From)
	assert.True(t, updated[2].IsOpen())
	assert.Equal(t, "h-2", updated[2].HospitalID)
	assert.Equal(t, models.GradeRegistrar, updated[2].Grade)
	assert.Equal(t, AssignmentUpdatedNote, updated[2].Note)

	assert.Nil(t, original[1].To, "input timeline is not modified")
	assert.Len(t, original, 2)

	open, ok := OpenEntry(updated)
	require.True(t, ok)
	assert.Equal(t, "h-2", open.HospitalID)
}

func TestReassignTimelineClosesEveryOpenEntry(t *testing.T) {
	original := []models.TimelineEntry{
		{From: t0, HospitalID: "h-1", Grade: models.GradeMO},
		{From: t0, HospitalID: "h-2", Grade: models.GradeMO},
	}

	updated := ReassignTimeline(original, "", models.GradeMO, t0.Add(time.Hour))

	openCount := 0
	for _, e := range updated {
		if e.IsOpen() {
			openCount++
		}
	}
	assert.Equal(t, 1, openCount)
	assert.Equal(t, "", updated[2].HospitalID)
}

func TestOpenEntryEmpty(t *testing.T) {
	_, ok := OpenEntry(nil)
	assert.False(t, ok)
}
