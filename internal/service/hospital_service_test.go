package service

import (
	"context"
	"errors"
	"testing"

	"anaesthesia-staffing-service/internal/models"
	"anaesthesia-staffing-service/internal/repository"
	"anaesthesia-staffing-service/internal/repository/mocks"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHospitalService_CreateKeepsNameOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	svc := NewHospitalService(store, store, log)
	svc.now = fixedClock(t0)
	require.NoError(t, svc.Load(ctx))

	zebra, err := svc.CreateHospital(ctx, newHospital("Zebra Clinic", 4), "admin@example.lk")
	require.NoError(t, err)
	_, err = svc.CreateHospital(ctx, newHospital("Alpha Base", 6), "admin@example.lk")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha Base", "Zebra Clinic"}, hospitalNames(svc.Hospitals()))
	assert.NotEmpty(t, zebra.ID)
	assert.Equal(t, t0, zebra.CreatedAt)
	assert.Equal(t, t0, zebra.UpdatedAt)

	stored, err := store.ListHospitals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Base", "Zebra Clinic"}, hospitalNames(stored))

	logs := store.AuditLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "hospital_create", logs[0].Action)
	assert.Equal(t, "admin@example.lk", logs[0].Actor)
}

func TestHospitalService_UpdateMergesAndResorts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	svc := NewHospitalService(store, store, log)

	alpha, err := svc.CreateHospital(ctx, newHospital("Alpha Base", 6), "admin")
	require.NoError(t, err)
	_, err = svc.CreateHospital(ctx, newHospital("Middle General", 3), "admin")
	require.NoError(t, err)

	later := t0.Add(1)
	svc.now = fixedClock(later)
	updated, found, err := svc.UpdateHospital(ctx, alpha.ID, models.HospitalPatch{
		Name:       strPtr("Zulu Teaching"),
		Allocation: intPtr(9),
	}, "admin")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Zulu Teaching", updated.Name)
	assert.Equal(t, 9, updated.Allocation)
	assert.Equal(t, "Western", updated.Province, "fields not provided are kept")
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, []string{"Middle General", "Zulu Teaching"}, hospitalNames(svc.Hospitals()))
}

func TestHospitalService_DeleteRemovesFromList(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	svc := NewHospitalService(store, store, log)

	h, err := svc.CreateHospital(ctx, newHospital("Alpha Base", 6), "admin")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHospital(ctx, h.ID, "admin"))

	assert.Empty(t, svc.Hospitals())
	_, ok := svc.Find(h.ID)
	assert.False(t, ok)
}

func TestHospitalService_DeleteUnknownIsPersistenceError(t *testing.T) {
	store := repository.NewMemoryStore()
	log, _ := test.NewNullLogger()
	svc := NewHospitalService(store, store, log)

	err := svc.DeleteHospital(context.Background(), "missing", "admin")

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "delete", perr.Op)
	assert.True(t, IsNotFound(err))
}

func TestHospitalService_FailedWritesLeaveStateUnchanged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHospitalStore(ctrl)
	log, hook := test.NewNullLogger()
	svc := NewHospitalService(store, nil, log)

	loaded := []models.Hospital{
		{ID: "h-1", Name: "Alpha Base", Allocation: 2},
		{ID: "h-2", Name: "Beta General", Allocation: 5},
	}
	unavailable := errors.New("store unavailable")

	store.EXPECT().ListHospitals(gomock.Any()).Return(loaded, nil)
	store.EXPECT().CreateHospital(gomock.Any(), gomock.Any()).Return(unavailable)
	store.EXPECT().UpdateHospital(gomock.Any(), "h-1", gomock.Any()).Return(unavailable)
	store.EXPECT().DeleteHospital(gomock.Any(), "h-2").Return(unavailable)

	require.NoError(t, svc.Load(ctx))
	before := svc.Hospitals()

	_, err := svc.CreateHospital(ctx, newHospital("Gamma", 1), "admin")
	assertPersistenceError(t, err, "create", unavailable)

	_, _, err = svc.UpdateHospital(ctx, "h-1", models.HospitalPatch{Name: strPtr("Renamed")}, "admin")
	assertPersistenceError(t, err, "update", unavailable)

	err = svc.DeleteHospital(ctx, "h-2", "admin")
	assertPersistenceError(t, err, "delete", unavailable)

	assert.Equal(t, before, svc.Hospitals())
	assert.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestHospitalService_FailedLoadKeepsList(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHospitalStore(ctrl)
	log, hook := test.NewNullLogger()
	svc := NewHospitalService(store, nil, log)

	loaded := []models.Hospital{{ID: "h-1", Name: "Alpha Base", Allocation: 2}}
	gomock.InOrder(
		store.EXPECT().ListHospitals(gomock.Any()).Return(loaded, nil),
		store.EXPECT().ListHospitals(gomock.Any()).Return(nil, errors.New("timeout")),
	)

	assert.True(t, svc.Loading())
	require.NoError(t, svc.Load(ctx))
	assert.False(t, svc.Loading())

	err := svc.Load(ctx)
	require.Error(t, err)
	assert.False(t, svc.Loading())
	assert.Equal(t, loaded, svc.Hospitals())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Error loading hospitals", hook.LastEntry().Message)
}

func assertPersistenceError(t *testing.T, err error, op string, cause error) {
	t.Helper()
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, op, perr.Op)
	assert.ErrorIs(t, err, cause)
}

func intPtr(i int) *int { return &i }

func TestHospitalService_AuditFailureDoesNotFailWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := mocks.NewMockAuditStore(ctrl)
	store := repository.NewMemoryStore()
	log, hook := test.NewNullLogger()
	svc := NewHospitalService(store, audit, log)

	audit.EXPECT().
		CreateAuditLog(gomock.Any(), "admin", "hospital_create", gomock.Any()).
		Return(errors.New("audit table locked"))

	h, err := svc.CreateHospital(context.Background(), newHospital("Alpha Base", 3), "admin")

	require.NoError(t, err)
	assert.Len(t, svc.Hospitals(), 1)
	assert.Equal(t, h.ID, svc.Hospitals()[0].ID)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "hospital_create", hook.LastEntry().Data["action"])
}
