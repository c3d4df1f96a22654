package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
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
		if patch.End == nil {
			updated.End = patch.Start.Add(appt.Duration())
		}
		updated.Start = *patch.Start
	}
	if patch.End != nil {
		updated.End = *patch.End
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

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func testDay() time.Time {
	return time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
}

func testAppointment(id string, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:      id,
		Title:   "Anna - Haircut",
		Start:   start,
		End:     end,
		Status:  domain.StatusScheduled,
		Version: 1,
	}
}

func newUseCase(fs *fakeStore) *UseCase {
	return NewUseCase(fs, schedule.NewValidator(domain.DefaultBusinessWindow()), nopLogger{})
}

func TestExecute_MovePreservesDuration(t *testing.T) {
	t.Parallel()

	day := testDay()
	fs := newFakeStore(testAppointment("a1", day.Add(10*time.Hour), day.Add(10*time.Hour+45*time.Minute)))
	uc := newUseCase(fs)

	resp, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "move",
		Day:  day,
		Time: ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, day.Add(14*time.Hour), resp.Start)
	assert.Equal(t, 45, resp.Duration)

	// A move must not patch the end, or the merge would flip the duration
	// origin to explicit.
	require.Len(t, fs.patches, 1)
	assert.Nil(t, fs.patches[0].End)
}

func TestExecute_DayDropKeepsTimeOfDay(t *testing.T) {
	t.Parallel()

	day := testDay()
	fs := newFakeStore(testAppointment("a1", day.Add(13*time.Hour+45*time.Minute), day.Add(14*time.Hour+30*time.Minute)))
	uc := newUseCase(fs)

	nextDay := day.AddDate(0, 0, 2)
	resp, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "move",
		Day:  nextDay,
	})
	require.NoError(t, err)

	assert.Equal(t, nextDay.Add(13*time.Hour+45*time.Minute), resp.Start)
	assert.Equal(t, 45, resp.Duration)
}

func TestExecute_ResizeEnd(t *testing.T) {
	t.Parallel()

	day := testDay()
	fs := newFakeStore(testAppointment("a1", day.Add(10*time.Hour), day.Add(11*time.Hour)))
	uc := newUseCase(fs)

	resp, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "resize-end",
		Day:  day,
		Time: ptr.Ptr(types.TimeString("12:30")),
	})
	require.NoError(t, err)

	assert.Equal(t, day.Add(10*time.Hour), resp.Start)
	assert.Equal(t, day.Add(12*time.Hour+30*time.Minute), resp.End)

	require.Len(t, fs.patches, 1)
	assert.Nil(t, fs.patches[0].Start)
}

func TestExecute_ResizeEndInversionRejected(t *testing.T) {
	t.Parallel()

	day := testDay()
	fs := newFakeStore(testAppointment("a1", day.Add(10*time.Hour), day.Add(11*time.Hour)))
	uc := newUseCase(fs)

	_, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "resize-end",
		Day:  day,
		Time: ptr.Ptr(types.TimeString("09:30")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, fs.patches)
}

func TestExecute_OverlapRejected(t *testing.T) {
	t.Parallel()

	day := testDay()
	other := testAppointment("a2", day.Add(14*time.Hour), day.Add(15*time.Hour))
	other.Title = "Olga - Coloring"
	fs := newFakeStore(
		testAppointment("a1", day.Add(10*time.Hour), day.Add(11*time.Hour)),
		other,
	)
	uc := newUseCase(fs)

	_, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "move",
		Day:  day,
		Time: ptr.Ptr(types.TimeString("14:30")),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorContains(t, err, "Olga - Coloring")
	assert.Empty(t, fs.patches)
}

func TestExecute_BackToBackAccepted(t *testing.T) {
	t.Parallel()

	day := testDay()
	other := testAppointment("a2", day.Add(14*time.Hour), day.Add(15*time.Hour))
	fs := newFakeStore(
		testAppointment("a1", day.Add(10*time.Hour), day.Add(11*time.Hour)),
		other,
	)
	uc := newUseCase(fs)

	_, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "move",
		Day:  day,
		Time: ptr.Ptr(types.TimeString("13:00")),
	})
	require.NoError(t, err)
}

func TestExecute_DayDropForResizeRejected(t *testing.T) {
	t.Parallel()

	day := testDay()
	fs := newFakeStore(testAppointment("a1", day.Add(10*time.Hour), day.Add(11*time.Hour)))
	uc := newUseCase(fs)

	_, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "resize-start",
		Day:  day,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotFound(t *testing.T) {
	t.Parallel()

	uc := newUseCase(newFakeStore())

	_, err := uc.Execute(context.Background(), "missing", &Request{
		Mode: "move",
		Day:  testDay(),
		Time: ptr.Ptr(types.TimeString("10:00")),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_UnknownMode(t *testing.T) {
	t.Parallel()

	uc := newUseCase(newFakeStore())

	_, err := uc.Execute(context.Background(), "a1", &Request{
		Mode: "stretch",
		Day:  testDay(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
