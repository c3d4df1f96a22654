package domain

import "time"

// DragMode says which part of the appointment a drag gesture manipulates.
type DragMode string

const (
	DragMove        DragMode = "move"
	DragResizeStart DragMode = "resize-start"
	DragResizeEnd   DragMode = "resize-end"
)

// ValidDragMode reports whether s names a known drag mode.
func ValidDragMode(s string) bool {
	switch DragMode(s) {
	case DragMove, DragResizeStart, DragResizeEnd:
		return true
	default:
		return false
	}
}

// DropTargetKind distinguishes a precise slot drop (day/week view) from a
// whole-day drop (month view). The month-view case is an explicit variant:
// it only changes the date and keeps the appointment's time of day.
type DropTargetKind string

const (
	DropOnSlot DropTargetKind = "slot"
	DropOnDay  DropTargetKind = "day"
)

// DropTarget is the destination of a drag gesture.
type DropTarget struct {
	Kind DropTargetKind
	Day  time.Time
	Slot TimeSlot // meaningful only when Kind == DropOnSlot
}

// SlotTarget builds a precise drop target.
func SlotTarget(day time.Time, slot TimeSlot) DropTarget {
	return DropTarget{Kind: DropOnSlot, Day: day, Slot: slot}
}

// DayTarget builds a whole-day drop target.
func DayTarget(day time.Time) DropTarget {
	return DropTarget{Kind: DropOnDay, Day: day}
}

// DragState is the transient state of one drag gesture. It is owned by the
// drag controller and cleared after every drop, successful or not.
type DragState struct {
	Dragged *Appointment
	Mode    DragMode
}

// IsDragging reports whether a gesture is in flight.
func (s DragState) IsDragging() bool {
	return s.Dragged != nil
}
