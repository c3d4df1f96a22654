package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Result is the outcome of validating a candidate appointment time.
// A rejected Result always carries a reason fit to show the user verbatim.
type Result struct {
	Valid  bool
	Reason string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Validator is the single authority on whether a candidate appointment time
// is acceptable. It holds the business window injected from config, the same
// instance slot generation uses.
type Validator struct {
	window domain.BusinessWindow
}

// NewValidator creates a validator for the given business window.
func NewValidator(window domain.BusinessWindow) *Validator {
	return &Validator{window: window}
}

// Window returns the validator's business window.
func (v *Validator) Window() domain.BusinessWindow {
	return v.window
}

// Validate checks a candidate time given as a calendar day plus "HH:MM"
// start and end strings, against all existing appointments. excludeID names
// the appointment being edited so it never conflicts with itself; pass ""
// when creating. Malformed input yields a rejected Result, never a panic.
func (v *Validator) Validate(day time.Time, startTime, endTime string, appointments []*domain.Appointment, excludeID string) Result {
	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return invalid("invalid start time, expected HH:MM")
	}
	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return invalid("invalid end time, expected HH:MM")
	}

	startAt := start.At(day)
	endAt := end.At(day)

	// An end at or before the start is read as crossing midnight, a
	// recovery rule rather than an error. The window check below still
	// rejects it, with a message that explains which rule was broken.
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	return v.ValidateInterval(startAt, endAt, appointments, excludeID)
}

// ValidateInterval checks an already-resolved [start, end) candidate. Used
// directly by the drag/resize path, where the instants are computed from the
// drop target instead of form fields.
func (v *Validator) ValidateInterval(start, end time.Time, appointments []*domain.Appointment, excludeID string) Result {
	if end.Sub(start) < domain.MinAppointmentMinutes*time.Minute {
		return invalid(fmt.Sprintf("appointment must be at least %d minutes long", domain.MinAppointmentMinutes))
	}

	if start.Before(v.window.StartOn(start)) {
		return invalid(fmt.Sprintf("appointment cannot start before business hours (%s)", v.window.Start.Format()))
	}
	if end.After(v.window.EndOn(start)) {
		return invalid(fmt.Sprintf("appointment cannot end after business hours (%s)", v.window.End.Format()))
	}

	for _, other := range appointments {
		if other.ID == excludeID {
			continue
		}
		// Only appointments on the same calendar day can conflict.
		// Status does not matter: a cancelled appointment still blocks
		// its slot until it is deleted.
		if !sameDay(other.Start, start) {
			continue
		}

		// Half-open interval overlap. A shared boundary instant is
		// back-to-back, which is legal: it lets the day pack
		// appointments edge to edge.
		overlaps := start.Before(other.End) && other.Start.Before(end)
		backToBack := start.Equal(other.End) || other.Start.Equal(end)

		if overlaps && !backToBack {
			return invalid(fmt.Sprintf("appointment overlaps with %q from %s to %s",
				other.Title, clockLabel(other.Start), clockLabel(other.End)))
		}
	}

	return valid()
}

func clockLabel(t time.Time) string {
	slot := domain.TimeSlot{Hour: t.Hour(), Minute: t.Minute()}
	return slot.Format()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
