package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"anaesthesia-staffing-service/internal/repository"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
hospitals:
  - name: National Hospital of Sri Lanka
    province: Western
    district: Colombo
    type: NATIONAL_HOSPITAL
    allocation: 40
  - name: Teaching Hospital Karapitiya
    province: Southern
    district: Galle
    type: TEACHING_HOSPITAL
    allocation: 12
    notes: Includes ICU cover
people:
  - first_name: Ann
    last_name: Perera
    slmc_number: "10001"
    grade: CONSULTANT
    hospital: national hospital of sri lanka
    personal_email: ann@example.lk
    anaesthesia_training_done: true
  - first_name: Ben
    last_name: Silva
    slmc_number: "10002"
    grade: MO
`

func newStaffing(store *repository.MemoryStore) *service.StaffingService {
	log, _ := test.NewNullLogger()
	return service.NewStaffingService(store, store, store, log, 1)
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))

	require.NoError(t, err)
	require.Len(t, f.Hospitals, 2)
	require.Len(t, f.People, 2)
	assert.Equal(t, 12, *f.Hospitals[1].Allocation)
	assert.Equal(t, "10001", f.People[0].SLMCNumber)
	assert.True(t, *f.People[0].AnaesthesiaTrainingDone)

	_, err = Parse([]byte("  \n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := LoadFile(path)

	require.NoError(t, err)
	assert.Len(t, f.Hospitals, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	result, err := Apply(ctx, newStaffing(store), f, "seed", log)
	require.NoError(t, err)
	assert.Equal(t, Result{HospitalsCreated: 2, PeopleCreated: 2}, result)

	// a fresh process with page size 1 must still see every person
	result, err = Apply(ctx, newStaffing(store), f, "seed", log)
	require.NoError(t, err)
	assert.Equal(t, Result{HospitalsSkipped: 2, PeopleSkipped: 2}, result)

	staffing := newStaffing(store)
	require.NoError(t, staffing.Refresh(ctx))
	require.NoError(t, staffing.People.LoadMore(ctx))
	rows := staffing.PeopleRows("")
	require.Len(t, rows, 2)
	assert.Equal(t, "National Hospital of Sri Lanka", rows[0].HospitalName)
	assert.Len(t, rows[0].Timeline, 1)
	assert.Equal(t, service.UnassignedLabel, rows[1].HospitalName)
}

func TestApplyRejectsInvalidFile(t *testing.T) {
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	f := File{People: []Person{{FirstName: "Ann", LastName: "Perera", SLMCNumber: "1", Grade: "INTERN"}}}

	_, err := Apply(context.Background(), newStaffing(store), f, "seed", log)

	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "current_grade")
	assert.Empty(t, store.AuditLogs(), "nothing is written")
}

func TestApplyUnknownHospitalWritesNothing(t *testing.T) {
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	f.People = append(f.People, Person{FirstName: "Cal", LastName: "Fernando", SLMCNumber: "10003", Grade: "MO", Hospital: "Nowhere"})

	_, err = Apply(context.Background(), newStaffing(store), f, "seed", log)

	assert.ErrorContains(t, err, `unknown hospital "Nowhere"`)
	hospitals, listErr := store.ListHospitals(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, hospitals)
	people, pageErr := store.PagePeople(context.Background(), nil, 10)
	require.NoError(t, pageErr)
	assert.Empty(t, people)
	assert.Empty(t, store.AuditLogs())
}
