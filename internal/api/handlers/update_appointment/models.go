package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model; all fields optional
type UpdateAppointmentRequest struct {
	ClientID        *string `json:"clientId,omitempty"`
	ServiceID       *string `json:"serviceId,omitempty"`
	StylistID       *string `json:"stylistId,omitempty"`
	Date            *string `json:"date,omitempty"`      // "2026-03-09"
	StartTime       *string `json:"startTime,omitempty"` // "10:00"
	EndTime         *string `json:"endTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientID        string  `json:"clientId"`
	ServiceID       string  `json:"serviceId"`
	StylistID       string  `json:"stylistId"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationSource  string  `json:"durationSource"`
	Notes           *string `json:"notes,omitempty"`
	Version         int64   `json:"version"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *UpdateAppointmentRequest) ToUseCaseRequest() (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		StylistID:       r.StylistID,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}

	if r.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.Date, time.Local)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Title:           resp.Title,
		Date:            resp.Start.Format(domain.DateFormat),
		StartTime:       resp.Start.Format(domain.TimeFormat),
		EndTime:         resp.End.Format(domain.TimeFormat),
		DurationMinutes: resp.Duration,
		Status:          resp.Status,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		StylistID:       resp.StylistID,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		DurationSource:  resp.DurationSource,
		Notes:           resp.Notes,
		Version:         resp.Version,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
