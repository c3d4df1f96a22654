package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
)

// UseCase projects the appointment collection into a calendar view: the day
// grid, the time slot rows and the positioned appointments.
type UseCase struct {
	store    AppointmentStore
	window   domain.BusinessWindow
	geometry schedule.Geometry
	logger   Logger
}

// NewUseCase creates a new get calendar use case
func NewUseCase(store AppointmentStore, window domain.BusinessWindow, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		window:   window,
		geometry: schedule.DefaultGeometry(),
		logger:   logger,
	}
}

// Execute runs the get calendar use case
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if !schedule.ValidView(req.View) {
		uc.logger.Warn("GetCalendar: unknown view %q", req.View)
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	view := schedule.View(req.View)
	visible := schedule.FilterByView(uc.store.Snapshot(), req.Date, view)

	resp := &Response{
		View:         req.View,
		Date:         req.Date,
		Days:         uc.dayCells(req.Date, view, visible),
		Appointments: uc.positioned(visible),
	}

	// The month grid has no time axis
	if view != schedule.ViewMonth {
		resp.TimeSlots = uc.slotCells()
	}

	uc.logger.Info("GetCalendar: view=%s date=%s -> %d appointments over %d days",
		req.View, req.Date.Format(domain.DateFormat), len(resp.Appointments), len(resp.Days))
	return resp, nil
}

func (uc *UseCase) dayCells(anchor time.Time, view schedule.View, visible []*domain.Appointment) []DayCell {
	var days []time.Time
	switch view {
	case schedule.ViewWeek:
		days = schedule.WeekDays(anchor)
	case schedule.ViewMonth:
		days = schedule.MonthDays(anchor)
	default:
		days = []time.Time{anchor}
	}

	counts := make(map[string]int, len(visible))
	for _, appt := range visible {
		counts[appt.Start.Format(domain.DateFormat)]++
	}

	cells := make([]DayCell, 0, len(days))
	anchorKey := anchor.Format(domain.DateFormat)
	for _, day := range days {
		key := day.Format(domain.DateFormat)
		cells = append(cells, DayCell{
			Date:      key,
			Weekday:   day.Weekday().String(),
			InMonth:   day.Month() == anchor.Month(),
			IsAnchor:  key == anchorKey,
			Appointed: counts[key],
		})
	}
	return cells
}

func (uc *UseCase) slotCells() []SlotCell {
	slots := schedule.TimeSlots(uc.window)
	cells := make([]SlotCell, 0, len(slots))
	for _, slot := range slots {
		cells = append(cells, SlotCell{
			Time:  fmt.Sprintf("%02d:%02d", slot.Hour, slot.Minute),
			Label: slot.Format(),
		})
	}
	return cells
}

func (uc *UseCase) positioned(visible []*domain.Appointment) []CalendarAppointment {
	out := make([]CalendarAppointment, 0, len(visible))
	for _, appt := range visible {
		box := uc.geometry.PositionOf(appt, uc.window)
		out = append(out, CalendarAppointment{
			ID:        appt.ID,
			Title:     appt.Title,
			Date:      appt.Start.Format(domain.DateFormat),
			StartTime: appt.Start.Format(domain.TimeFormat),
			EndTime:   appt.End.Format(domain.TimeFormat),
			Status:    string(appt.Status),
			Top:       box.Top,
			Height:    box.Height,
		})
	}
	return out
}
