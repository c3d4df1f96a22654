package schedule

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrNoActiveDrag is returned when Drop is called with no gesture in flight.
	ErrNoActiveDrag = errors.New("schedule: no drag in progress")

	// ErrStartNotBeforeEnd is returned when a resize-start drop would put
	// the start at or after the end.
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")

	// ErrEndNotAfterStart is returned when a resize-end drop would put the
	// end at or before the start.
	ErrEndNotAfterStart = errors.New("end time cannot be before start time")
)

// Candidate is the time range a drag gesture proposes. It carries the
// derived duration explicitly so downstream consumers never recompute it.
type Candidate struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// DragController is the state machine for a single drag gesture:
// idle -> dragging(appointment, mode) -> idle. Drop always clears the state,
// whether it resolves a candidate or fails, so an aborted gesture can never
// leak into the next one.
type DragController struct {
	state domain.DragState
}

// NewDragController returns an idle controller.
func NewDragController() *DragController {
	return &DragController{}
}

// State exposes the current drag state (for rendering the gesture).
func (c *DragController) State() domain.DragState {
	return c.state
}

// Begin records the dragged appointment and mode.
func (c *DragController) Begin(appt *domain.Appointment, mode domain.DragMode) {
	c.state = domain.DragState{Dragged: appt.Clone(), Mode: mode}
}

// Cancel discards the gesture without resolving anything.
func (c *DragController) Cancel() {
	c.state = domain.DragState{}
}

// Drop resolves the gesture against a target and returns the candidate time
// range. Ordering rules are enforced here; business-hours and overlap checks
// are the Validator's job, run by the caller before committing.
//
//   - move: start follows the target, duration is preserved exactly. The
//     duration is never re-derived from a service default.
//   - resize-start: start follows the target, end is unchanged.
//   - resize-end: end follows the target, start is unchanged.
//
// A whole-day target (month view) keeps the appointment's time of day and
// changes only the date.
func (c *DragController) Drop(target domain.DropTarget) (Candidate, error) {
	state := c.state
	c.state = domain.DragState{}

	if !state.IsDragging() {
		return Candidate{}, ErrNoActiveDrag
	}
	appt := state.Dragged

	switch state.Mode {
	case domain.DragResizeStart:
		newStart := resolveInstant(target, appt.Start)
		if !newStart.Before(appt.End) {
			return Candidate{}, ErrStartNotBeforeEnd
		}
		return newCandidate(newStart, appt.End), nil

	case domain.DragResizeEnd:
		newEnd := resolveInstant(target, appt.End)
		if !newEnd.After(appt.Start) {
			return Candidate{}, ErrEndNotAfterStart
		}
		return newCandidate(appt.Start, newEnd), nil

	default: // move
		newStart := resolveInstant(target, appt.Start)
		return newCandidate(newStart, newStart.Add(appt.Duration())), nil
	}
}

// resolveInstant turns a drop target into an instant. A slot target pins the
// time of day; a whole-day target keeps the time of day of the edge being
// dragged and moves only the date.
func resolveInstant(target domain.DropTarget, edge time.Time) time.Time {
	if target.Kind == domain.DropOnDay {
		slot := domain.TimeSlot{Hour: edge.Hour(), Minute: edge.Minute()}
		return slot.On(target.Day)
	}
	return target.Slot.On(target.Day)
}

func newCandidate(start, end time.Time) Candidate {
	return Candidate{
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
	}
}
