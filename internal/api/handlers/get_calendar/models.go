package get_calendar

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	View string `json:"view"`
	Date string `json:"date"`

	Days      []DayCell  `json:"days"`
	TimeSlots []SlotCell `json:"timeSlots,omitempty"`

	Appointments []CalendarAppointment `json:"appointments"`
}

// DayCell one day of the view grid
type DayCell struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	InMonth      bool   `json:"inMonth"`
	IsAnchor     bool   `json:"isAnchor"`
	Appointments int    `json:"appointments"`
}

// SlotCell one row of the day/week time grid
type SlotCell struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

// CalendarAppointment an appointment positioned inside the view
type CalendarAppointment struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		View:         resp.View,
		Date:         resp.Date.Format(domain.DateFormat),
		Days:         make([]DayCell, 0, len(resp.Days)),
		Appointments: make([]CalendarAppointment, 0, len(resp.Appointments)),
	}

	for _, day := range resp.Days {
		out.Days = append(out.Days, DayCell{
			Date:         day.Date,
			Weekday:      day.Weekday,
			InMonth:      day.InMonth,
			IsAnchor:     day.IsAnchor,
			Appointments: day.Appointed,
		})
	}

	for _, slot := range resp.TimeSlots {
		out.TimeSlots = append(out.TimeSlots, SlotCell{
			Time:  slot.Time,
			Label: slot.Label,
		})
	}

	for _, appt := range resp.Appointments {
		out.Appointments = append(out.Appointments, CalendarAppointment{
			ID:        appt.ID,
			Title:     appt.Title,
			Date:      appt.Date,
			StartTime: appt.StartTime,
			EndTime:   appt.EndTime,
			Status:    appt.Status,
			Top:       appt.Top,
			Height:    appt.Height,
		})
	}

	return out
}
