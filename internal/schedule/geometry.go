package schedule

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Geometry maps time of day to an abstract vertical unit and back. The same
// linear mapping is used in both directions: renderers place appointments
// with PositionOf, and the drag path hit-tests drops with SlotAt. Units are
// pixel-equivalent but carry no rendering meaning here.
type Geometry struct {
	// UnitsPerHour is the vertical size of one hour.
	UnitsPerHour float64

	// MinEventUnits is the floor on event height, so near-zero-duration
	// appointments stay visible and clickable.
	MinEventUnits float64
}

// DefaultGeometry matches a 60-unit hour with a 30-unit minimum event.
func DefaultGeometry() Geometry {
	return Geometry{UnitsPerHour: 60, MinEventUnits: 30}
}

// EventBox is the vertical placement of one appointment within a day column.
type EventBox struct {
	Top    float64
	Height float64
}

// PositionOf returns the box for an appointment: offset proportional to
// minutes since the window start, height proportional to duration, clamped
// to the minimum height.
func (g Geometry) PositionOf(appt *domain.Appointment, window domain.BusinessWindow) EventBox {
	startMinutes := minutesOfDay(appt.Start) - window.Start.TotalMinutes()
	durationMinutes := appt.End.Sub(appt.Start).Minutes()

	height := durationMinutes / 60 * g.UnitsPerHour
	if height < g.MinEventUnits {
		height = g.MinEventUnits
	}

	return EventBox{
		Top:    float64(startMinutes) / 60 * g.UnitsPerHour,
		Height: height,
	}
}

// SlotAt inverts the vertical mapping: given an offset from the top of the
// day column, it returns the nearest grid slot, clamped to the business
// window. PositionOf followed by SlotAt on a grid-aligned start is identity.
func (g Geometry) SlotAt(top float64, window domain.BusinessWindow) domain.TimeSlot {
	minutes := top / g.UnitsPerHour * 60

	// Snap to the grid step.
	step := float64(domain.SlotStepMinutes)
	snapped := int(((minutes + step/2) / step)) * domain.SlotStepMinutes

	if snapped < 0 {
		snapped = 0
	}
	if snapped > window.Minutes() {
		snapped = window.Minutes()
	}

	total := window.Start.TotalMinutes() + snapped
	return domain.TimeSlot{Hour: total / 60, Minute: total % 60}
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
