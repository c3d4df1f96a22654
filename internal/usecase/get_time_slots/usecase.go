package get_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
)

// Response is the bookable slot grid of one business day
type Response struct {
	WindowStart string // "09:00"
	WindowEnd   string // "18:00"
	Slots       []Slot
	Hours       []Hour
}

// Slot is one 15-minute entry of the booking grid
type Slot struct {
	Time  string // "10:15"
	Label string // "10:15 AM"
}

// Hour is one axis row of the day grid
type Hour struct {
	Hour  int
	Label string // "10:00 AM"
}

// UseCase exposes the slot grid derived from the business window. The grid
// is the same for every day, so the use case takes no date.
type UseCase struct {
	window domain.BusinessWindow
	logger Logger
}

// NewUseCase creates a new get time slots use case
func NewUseCase(window domain.BusinessWindow, logger Logger) *UseCase {
	return &UseCase{window: window, logger: logger}
}

// Execute runs the get time slots use case
func (uc *UseCase) Execute(_ context.Context) *Response {
	slots := schedule.TimeSlots(uc.window)
	hours := schedule.HourSlots(uc.window)

	resp := &Response{
		WindowStart: fmt.Sprintf("%02d:%02d", uc.window.Start.Hour, uc.window.Start.Minute),
		WindowEnd:   fmt.Sprintf("%02d:%02d", uc.window.End.Hour, uc.window.End.Minute),
		Slots:       make([]Slot, 0, len(slots)),
		Hours:       make([]Hour, 0, len(hours)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, Slot{
			Time:  fmt.Sprintf("%02d:%02d", slot.Hour, slot.Minute),
			Label: slot.Format(),
		})
	}

	for _, hour := range hours {
		resp.Hours = append(resp.Hours, Hour{
			Hour:  hour,
			Label: domain.TimeSlot{Hour: hour}.Format(),
		})
	}

	uc.logger.Info("GetTimeSlots: %d slots, %d hours", len(resp.Slots), len(resp.Hours))
	return resp
}
