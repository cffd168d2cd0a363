package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGrade(t *testing.T) {
	assert.Equal(t, 1, GradeMO.Rank())
	assert.Equal(t, 4, GradeConsultant.Rank())
	assert.Zero(t, Grade("INTERN").Rank())

	assert.True(t, GradeSeniorRegistrar.Valid())
	assert.False(t, Grade("mo").Valid())

	assert.Equal(t, "Medical Officer", GradeMO.Label())
	assert.Equal(t, "INTERN", Grade("INTERN").Label())
}

func TestHospitalType(t *testing.T) {
	assert.True(t, HospitalTypeMOHOffice.Valid())
	assert.False(t, HospitalType("CLINIC").Valid())
	assert.Equal(t, "Teaching Hospital", HospitalTypeTeaching.Label())
	assert.Equal(t, "CLINIC", HospitalType("CLINIC").Label())

	assert.True(t, GenderFemale.Valid())
	assert.False(t, Gender("").Valid())
}

func TestHospitalPatch(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	zero := 0
	patch := HospitalPatch{Name: strPtr("Renamed"), Allocation: &zero, UpdatedAt: now}

	assert.Equal(t, map[string]interface{}{
		"name":       "Renamed",
		"allocation": 0,
		"updated_at": now,
	}, patch.Columns())

	h := Hospital{Name: "Old", Province: "Western", Allocation: 3}
	patch.Apply(&h)
	assert.Equal(t, "Renamed", h.Name)
	assert.Equal(t, "Western", h.Province)
	assert.Zero(t, h.Allocation)
	assert.Equal(t, now, h.UpdatedAt)

	assert.Empty(t, HospitalPatch{}.Columns())
}

func TestSortHospitalsByName(t *testing.T) {
	hospitals := []Hospital{{ID: "1", Name: "beta"}, {ID: "2", Name: "Alpha"}, {ID: "3", Name: "Beta"}}

	SortHospitalsByName(hospitals)

	assert.Equal(t, "2", hospitals[0].ID)
	assert.Equal(t, "1", hospitals[1].ID, "equal names keep their order")
	assert.Equal(t, "3", hospitals[2].ID)
}

func TestPersonPatchUnassign(t *testing.T) {
	patch := PersonPatch{CurrentHospitalID: strPtr("")}

	cols := patch.Columns()
	v, ok := cols["current_hospital_id"]
	require.True(t, ok)
	assert.Nil(t, v)

	p := Person{CurrentHospitalID: strPtr("h-1")}
	patch.Apply(&p)
	assert.False(t, p.IsAssigned())
	assert.Equal(t, "", p.HospitalIDOrEmpty())
}

func TestPersonPatchApplyCopies(t *testing.T) {
	grade := GradeRegistrar
	email := "ann@example.lk"
	timeline := []TimelineEntry{{HospitalID: "h-2", Grade: grade}}
	patch := PersonPatch{
		PersonalEmail:     &email,
		CurrentHospitalID: strPtr("h-2"),
		CurrentGrade:      &grade,
		Timeline:          timeline,
	}

	p := Person{FirstName: "Ann", CurrentGrade: GradeMO}
	patch.Apply(&p)

	assert.Equal(t, "Ann", p.FirstName)
	assert.Equal(t, GradeRegistrar, p.CurrentGrade)
	assert.Equal(t, "h-2", p.HospitalIDOrEmpty())

	email = "changed@example.lk"
	timeline[0].HospitalID = "h-9"
	assert.Equal(t, "ann@example.lk", *p.PersonalEmail)
	assert.Equal(t, "h-2", p.Timeline[0].HospitalID)

	cols := patch.Columns()
	assert.Equal(t, "REGISTRAR", cols["current_grade"])
	assert.Contains(t, cols, "timeline")
	assert.NotContains(t, cols, "first_name")
}

func TestPersonClone(t *testing.T) {
	p := Person{FirstName: "Ann", LastName: "Perera", Timeline: []TimelineEntry{{HospitalID: "h-1"}}}

	c := p.Clone()
	c.Timeline[0].HospitalID = "h-2"

	assert.Equal(t, "h-1", p.Timeline[0].HospitalID)
	assert.Equal(t, "Ann Perera", p.FullName())
	assert.True(t, p.Timeline[0].IsOpen())
}
