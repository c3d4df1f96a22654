// Package schedule is the scheduling core: slot generation, appointment
// validation, calendar projection and drag/resize resolution. Everything in
// it is pure; state lives in the appointment store.
package schedule

import "github.com/m04kA/SMC-SalonService/internal/domain"

// TimeSlots returns every grid slot of the business window at the
// 15-minute step, first slot at the window start, last slot at the window
// end. The closing slot is included so a resize gesture can target the end
// of the day. Deterministic for a given window.
func TimeSlots(window domain.BusinessWindow) []domain.TimeSlot {
	start := window.Start.TotalMinutes()
	end := window.End.TotalMinutes()

	slots := make([]domain.TimeSlot, 0, (end-start)/domain.SlotStepMinutes+1)
	for m := start; m <= end; m += domain.SlotStepMinutes {
		slots = append(slots, domain.TimeSlot{Hour: m / 60, Minute: m % 60})
	}
	return slots
}

// HourSlots returns one entry per hour boundary of the window, closing hour
// included, for the calendar's time axis labels.
func HourSlots(window domain.BusinessWindow) []int {
	hours := make([]int, 0, window.End.Hour-window.Start.Hour+1)
	for h := window.Start.Hour; h <= window.End.Hour; h++ {
		hours = append(hours, h)
	}
	return hours
}
