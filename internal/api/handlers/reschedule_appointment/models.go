package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model. A drop on a time slot
// carries day+time; a whole-day drop (month view) carries only day.
type RescheduleAppointmentRequest struct {
	Mode string  `json:"mode"` // "move", "resize-start" or "resize-end"
	Day  string  `json:"day"`  // "2026-03-09"
	Time *string `json:"time,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Version         int64  `json:"version"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RescheduleAppointmentRequest) ToUseCaseRequest() (*rescheduleAppointment.Request, error) {
	day, err := time.ParseInLocation(domain.DateFormat, r.Day, time.Local)
	if err != nil {
		return nil, err
	}

	req := &rescheduleAppointment.Request{
		Mode: r.Mode,
		Day:  day,
	}

	if r.Time != nil {
		slotTime, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &slotTime
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Title:           resp.Title,
		Date:            resp.Start.Format(domain.DateFormat),
		StartTime:       resp.Start.Format(domain.TimeFormat),
		EndTime:         resp.End.Format(domain.TimeFormat),
		DurationMinutes: resp.Duration,
		Status:          resp.Status,
		Version:         resp.Version,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
