package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakePersistence struct {
	created []*domain.Appointment
	updated []*domain.Appointment
	deleted []string
	listed  []*domain.Appointment

	failNext error
}

func (f *fakePersistence) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	f.created = append(f.created, appt.Clone())
	return appt.Clone(), nil
}

func (f *fakePersistence) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	f.updated = append(f.updated, appt.Clone())
	return appt.Clone(), nil
}

func (f *fakePersistence) Delete(_ context.Context, id string) error {
	if f.failNext != nil {
		return f.failNext
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePersistence) List(_ context.Context) ([]*domain.Appointment, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	return f.listed, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

func newTestStore(persistence *fakePersistence) *Store {
	s := New(persistence, nopLogger{})
	s.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)}
	nextID := 0
	s.newID = func() string {
		nextID++
		return []string{"id-1", "id-2", "id-3"}[nextID-1]
	}
	return s
}

func testCreateData() CreateData {
	return CreateData{
		ClientID:               "client-1",
		ServiceID:              "service-1",
		StylistID:              "stylist-1",
		ClientName:             "Anna",
		ServiceName:            "Haircut",
		ServicePrice:           45,
		ServiceDurationMinutes: 45,
		Date:                   time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		Time:                   "10:00",
	}
}

func TestStore_Create_ServiceDuration(t *testing.T) {
	t.Parallel()

	persistence := &fakePersistence{}
	s := newTestStore(persistence)

	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	assert.Equal(t, "id-1", appt.ID)
	assert.Equal(t, "Anna - Haircut", appt.Title)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, domain.DurationFromService, appt.DurationSource)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local), appt.Start)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 45, 0, 0, time.Local), appt.End)
	assert.Equal(t, int64(1), appt.Version)
	require.Len(t, persistence.created, 1)
}

func TestStore_Create_ExplicitEndTime(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	data := testCreateData()
	data.EndTime = ptr.Ptr("11:30")

	appt, err := s.Create(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, domain.DurationExplicit, appt.DurationSource)
	assert.Equal(t, time.Date(2026, 3, 9, 11, 30, 0, 0, time.Local), appt.End)
}

func TestStore_Create_ExplicitDurationMinutes(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	data := testCreateData()
	data.DurationMinutes = ptr.Ptr(90)

	appt, err := s.Create(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, domain.DurationExplicit, appt.DurationSource)
	assert.Equal(t, 90, appt.DurationMinutes())
}

func TestStore_Create_DefaultDurationWhenServiceHasNone(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	data := testCreateData()
	data.ServiceDurationMinutes = 0

	appt, err := s.Create(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultServiceDurationMinutes, appt.DurationMinutes())
	assert.Equal(t, domain.DurationFromService, appt.DurationSource)
}

func TestStore_Create_EndTimeBeforeStartCrossesMidnight(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	data := testCreateData()
	data.Time = "23:00"
	data.EndTime = ptr.Ptr("00:30")

	appt, err := s.Create(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local), appt.End)
}

func TestStore_Create_InvalidTime(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	data := testCreateData()
	data.Time = "25:00"

	_, err := s.Create(context.Background(), data)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStore_Create_PersistenceFailureLeavesMemoryUnchanged(t *testing.T) {
	t.Parallel()

	persistence := &fakePersistence{failNext: errors.New("connection refused")}
	s := newTestStore(persistence)

	_, err := s.Create(context.Background(), testCreateData())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, s.Snapshot())
}

func TestStore_Update_MoveStartPreservesDuration(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	newStart := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	updated, err := s.Update(context.Background(), appt.ID, UpdatePatch{Start: &newStart})
	require.NoError(t, err)

	assert.Equal(t, newStart, updated.Start)
	assert.Equal(t, appt.Duration(), updated.Duration())
	assert.Equal(t, int64(2), updated.Version)
}

func TestStore_Update_DateAndTimeRecomputeStart(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), appt.ID, UpdatePatch{
		Date: ptr.Ptr(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)),
		Time: ptr.Ptr("15:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local), updated.Start)
	assert.Equal(t, 45, updated.DurationMinutes())
}

func TestStore_Update_ExplicitEndWins(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), appt.ID, UpdatePatch{EndTime: ptr.Ptr("12:00")})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local), updated.End)
	assert.Equal(t, domain.DurationExplicit, updated.DurationSource)
}

func TestStore_Update_RenamesTitleOnClientChange(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), appt.ID, UpdatePatch{ClientName: ptr.Ptr("Maria")})
	require.NoError(t, err)

	assert.Equal(t, "Maria - Haircut", updated.Title)
}

func TestStore_Update_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	_, err := s.Update(context.Background(), "missing", UpdatePatch{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestStore_Update_PersistenceFailureLeavesMemoryUnchanged(t *testing.T) {
	t.Parallel()

	persistence := &fakePersistence{}
	s := newTestStore(persistence)
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	persistence.failNext = errors.New("timeout")
	newStart := time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local)
	_, err = s.Update(context.Background(), appt.ID, UpdatePatch{Start: &newStart})
	assert.ErrorIs(t, err, ErrPersistence)

	stored, ok := s.GetByID(appt.ID)
	require.True(t, ok)
	assert.Equal(t, appt.Start, stored.Start)
	assert.Equal(t, int64(1), stored.Version)
}

func TestStore_SetStatus(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	updated, err := s.SetStatus(context.Background(), appt.ID, domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, int64(2), updated.Version)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	persistence := &fakePersistence{}
	s := newTestStore(persistence)
	appt, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), appt.ID))

	_, ok := s.GetByID(appt.ID)
	assert.False(t, ok)
	assert.Equal(t, []string{appt.ID}, persistence.deleted)

	assert.ErrorIs(t, s.Delete(context.Background(), appt.ID), ErrAppointmentNotFound)
}

func TestStore_SnapshotSortedAndIsolated(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	late := testCreateData()
	late.Time = "16:00"
	_, err := s.Create(context.Background(), late)
	require.NoError(t, err)

	early := testCreateData()
	early.Time = "09:00"
	_, err = s.Create(context.Background(), early)
	require.NoError(t, err)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.True(t, snapshot[0].Start.Before(snapshot[1].Start))

	// Mutating the snapshot must not leak into the store.
	snapshot[0].Title = "changed"
	stored, ok := s.GetByID(snapshot[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", stored.Title)
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	persisted := &domain.Appointment{
		ID:    "id-9",
		Title: "Olga - Coloring",
		Start: time.Date(2026, 3, 9, 11, 0, 0, 0, time.Local),
		End:   time.Date(2026, 3, 9, 12, 30, 0, 0, time.Local),
	}
	s := newTestStore(&fakePersistence{listed: []*domain.Appointment{persisted}})

	require.NoError(t, s.Load(context.Background()))

	stored, ok := s.GetByID("id-9")
	require.True(t, ok)
	assert.Equal(t, "Olga - Coloring", stored.Title)
}

func TestStore_SubscribeNotifiedOnMutation(t *testing.T) {
	t.Parallel()

	s := newTestStore(&fakePersistence{})

	notified := 0
	s.Subscribe(func() { notified++ })

	_, err := s.Create(context.Background(), testCreateData())
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	require.NoError(t, s.Delete(context.Background(), "id-1"))
	assert.Equal(t, 2, notified)
}
