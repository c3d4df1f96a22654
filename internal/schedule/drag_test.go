package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestDropMovePreservesDuration(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "09:00", "10:00")

	c.Begin(appt, domain.DragMove)
	cand, err := c.Drop(domain.SlotTarget(day, domain.TimeSlot{Hour: 14, Minute: 0}))

	require.NoError(t, err)
	assert.Equal(t, 14, cand.Start.Hour())
	assert.Equal(t, 15, cand.End.Hour())
	assert.Equal(t, 60, cand.DurationMinutes)
	assert.Equal(t, appt.Duration(), cand.End.Sub(cand.Start))
	assert.False(t, c.State().IsDragging(), "state must clear after drop")
}

func TestDropMoveAcrossDays(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "09:00", "10:30")

	target := day.AddDate(0, 0, 2)
	c.Begin(appt, domain.DragMove)
	cand, err := c.Drop(domain.SlotTarget(target, domain.TimeSlot{Hour: 11, Minute: 15}))

	require.NoError(t, err)
	assert.Equal(t, target.Day(), cand.Start.Day())
	assert.Equal(t, 90, cand.DurationMinutes)
}

func TestDropOnDayPreservesTimeOfDay(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "13:45", "15:00")

	// Month view: the whole-day target changes only the date.
	target := day.AddDate(0, 0, 9)
	c.Begin(appt, domain.DragMove)
	cand, err := c.Drop(domain.DayTarget(target))

	require.NoError(t, err)
	assert.Equal(t, target.Day(), cand.Start.Day())
	assert.Equal(t, 13, cand.Start.Hour())
	assert.Equal(t, 45, cand.Start.Minute())
	assert.Equal(t, 75, cand.DurationMinutes)
}

func TestDropResizeStart(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "10:00", "11:00")

	c.Begin(appt, domain.DragResizeStart)
	cand, err := c.Drop(domain.SlotTarget(day, domain.TimeSlot{Hour: 9, Minute: 30}))

	require.NoError(t, err)
	assert.Equal(t, 9, cand.Start.Hour())
	assert.Equal(t, 30, cand.Start.Minute())
	// End untouched.
	assert.True(t, cand.End.Equal(appt.End))
	assert.Equal(t, 90, cand.DurationMinutes)
}

func TestDropResizeStartRejectsInversion(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "10:00", "11:00")

	c.Begin(appt, domain.DragResizeStart)
	_, err := c.Drop(domain.SlotTarget(day, domain.TimeSlot{Hour: 11, Minute: 0}))

	assert.ErrorIs(t, err, ErrStartNotBeforeEnd)
	assert.False(t, c.State().IsDragging(), "state must clear on failure too")
}

func TestDropResizeEnd(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "09:00", "10:00")

	c.Begin(appt, domain.DragResizeEnd)
	cand, err := c.Drop(domain.SlotTarget(day, domain.TimeSlot{Hour: 9, Minute: 20}))

	require.NoError(t, err)
	assert.True(t, cand.Start.Equal(appt.Start))
	assert.Equal(t, 20, cand.DurationMinutes)
}

func TestDropResizeEndRejectsInversion(t *testing.T) {
	c := NewDragController()
	day := testDay()
	appt := appointmentAt(t, "a1", "Anna - Haircut", day, "10:00", "11:00")

	c.Begin(appt, domain.DragResizeEnd)
	_, err := c.Drop(domain.SlotTarget(day, domain.TimeSlot{Hour: 10, Minute: 0}))

	assert.ErrorIs(t, err, ErrEndNotAfterStart)
}

func TestDropWithoutBegin(t *testing.T) {
	c := NewDragController()

	_, err := c.Drop(domain.SlotTarget(testDay(), domain.TimeSlot{Hour: 10, Minute: 0}))

	assert.ErrorIs(t, err, ErrNoActiveDrag)
}

func TestCancelClearsGesture(t *testing.T) {
	c := NewDragController()
	appt := appointmentAt(t, "a1", "Anna - Haircut", testDay(), "10:00", "11:00")

	c.Begin(appt, domain.DragMove)
	require.True(t, c.State().IsDragging())

	c.Cancel()
	assert.False(t, c.State().IsDragging())

	_, err := c.Drop(domain.SlotTarget(testDay(), domain.TimeSlot{Hour: 12, Minute: 0}))
	assert.ErrorIs(t, err, ErrNoActiveDrag)
}

func TestBeginClonesDraggedAppointment(t *testing.T) {
	c := NewDragController()
	appt := appointmentAt(t, "a1", "Anna - Haircut", testDay(), "10:00", "11:00")

	c.Begin(appt, domain.DragMove)
	appt.Start = appt.Start.Add(2 * time.Hour) // mutate the original

	cand, err := c.Drop(domain.DayTarget(testDay()))
	require.NoError(t, err)
	assert.Equal(t, 10, cand.Start.Hour(), "controller must hold its own copy")
}
