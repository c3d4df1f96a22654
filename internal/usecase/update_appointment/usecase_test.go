package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeStore struct {
	appointments map[string]*domain.Appointment
	patches      []store.UpdatePatch
}

func newFakeStore(appts ...*domain.Appointment) *fakeStore {
	f := &fakeStore{appointments: make(map[string]*domain.Appointment)}
	for _, appt := range appts {
		f.appointments[appt.ID] = appt
	}
	return f
}

func (f *fakeStore) GetByID(id string) (*domain.Appointment, bool) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, false
	}
	return appt.Clone(), true
}

func (f *fakeStore) Update(_ context.Context, id string, patch store.UpdatePatch) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, store.ErrAppointmentNotFound
	}
	f.patches = append(f.patches, patch)

	updated := appt.Clone()
	if patch.Start != nil {
		updated.Start = *patch.Start
	}
	updated.Version = appt.Version + 1
	return updated, nil
}

func (f *fakeStore) Snapshot() []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		out = append(out, appt.Clone())
	}
	return out
}

type fakeCatalog struct {
	serviceErr error
}

func (f *fakeCatalog) GetClient(context.Context, string) (*catalogservice.Client, error) {
	return &catalogservice.Client{ID: "client-2", Name: "Maria"}, nil
}

func (f *fakeCatalog) GetService(context.Context, string) (*catalogservice.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return &catalogservice.Service{ID: "service-2", Name: "Coloring", Price: 120, DurationMinutes: 90}, nil
}

func (f *fakeCatalog) GetStylist(context.Context, string) (*catalogservice.Stylist, error) {
	return &catalogservice.Stylist{ID: "stylist-2", Name: "Lena"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func testDay() time.Time {
	return time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
}

func existingAppointment(id string, startHour, endHour int) *domain.Appointment {
	day := testDay()
	return &domain.Appointment{
		ID:        id,
		Title:     "Anna - Haircut",
		ClientID:  "client-1",
		ServiceID: "service-1",
		StylistID: "stylist-1",
		Start:     day.Add(time.Duration(startHour) * time.Hour),
		End:       day.Add(time.Duration(endHour) * time.Hour),
		Status:    domain.StatusScheduled,
		Version:   1,
	}
}

func newUseCase(fs *fakeStore, catalog *fakeCatalog) *UseCase {
	validator := schedule.NewValidator(domain.DefaultBusinessWindow())
	return NewUseCase(fs, validator, catalog, nopLogger{})
}

func TestExecute_MoveStart(t *testing.T) {
	t.Parallel()

	fs := newFakeStore(existingAppointment("a1", 10, 11))
	uc := newUseCase(fs, &fakeCatalog{})

	resp, err := uc.Execute(context.Background(), "a1", &Request{
		StartTime: ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Version)

	require.Len(t, fs.patches, 1)
	require.NotNil(t, fs.patches[0].Time)
	assert.Equal(t, "14:00", *fs.patches[0].Time)
}

func TestExecute_ExcludesSelfFromOverlapScan(t *testing.T) {
	t.Parallel()

	// Nudging the appointment by 15 minutes into its own old interval must
	// not count as a conflict with itself.
	fs := newFakeStore(existingAppointment("a1", 10, 11))
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), "a1", &Request{
		StartTime: ptr.Ptr(types.TimeString("10:15")),
	})
	require.NoError(t, err)
}

func TestExecute_RejectsOverlapWithOther(t *testing.T) {
	t.Parallel()

	other := existingAppointment("a2", 14, 15)
	other.Title = "Olga - Coloring"
	fs := newFakeStore(existingAppointment("a1", 10, 11), other)
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), "a1", &Request{
		StartTime: ptr.Ptr(types.TimeString("14:30")),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorContains(t, err, "Olga - Coloring")
	assert.Empty(t, fs.patches)
}

func TestExecute_ServiceChangeRefreshesSnapshot(t *testing.T) {
	t.Parallel()

	fs := newFakeStore(existingAppointment("a1", 10, 11))
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), "a1", &Request{
		ServiceID: ptr.Ptr("service-2"),
	})
	require.NoError(t, err)

	require.Len(t, fs.patches, 1)
	patch := fs.patches[0]
	require.NotNil(t, patch.ServiceName)
	assert.Equal(t, "Coloring", *patch.ServiceName)
	require.NotNil(t, patch.ServicePrice)
	assert.Equal(t, float64(120), *patch.ServicePrice)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	t.Parallel()

	fs := newFakeStore(existingAppointment("a1", 10, 11))
	uc := newUseCase(fs, &fakeCatalog{serviceErr: catalogservice.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), "a1", &Request{
		ServiceID: ptr.Ptr("service-9"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotFound(t *testing.T) {
	t.Parallel()

	uc := newUseCase(newFakeStore(), &fakeCatalog{})

	_, err := uc.Execute(context.Background(), "missing", &Request{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	t.Parallel()

	fs := newFakeStore(existingAppointment("a1", 10, 11))
	uc := newUseCase(fs, &fakeCatalog{})

	_, err := uc.Execute(context.Background(), "a1", &Request{
		StartTime: ptr.Ptr(types.TimeString("bad")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
