package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// ListAppointmentsRequest filters the appointment list
type ListAppointmentsRequest struct {
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	StylistID *string    `json:"stylistId,omitempty"`
	ClientID  *string    `json:"clientId,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		From:      r.From,
		To:        r.To,
		StylistID: r.StylistID,
		ClientID:  r.ClientID,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest changes an appointment's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// AppointmentResponse is the appointment DTO
type AppointmentResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`      // "2026-03-09"
	Time     string `json:"time"`      // "10:00"
	EndTime  string `json:"endTime"`   // "10:45"
	Start    string `json:"start"`     // ISO 8601
	End      string `json:"end"`       // ISO 8601
	Status   string `json:"status"`
	Duration int    `json:"durationMinutes"`

	ClientID  string `json:"clientId"`
	ServiceID string `json:"serviceId"`
	StylistID string `json:"stylistId"`

	// Denormalized catalog snapshot
	ClientName             string  `json:"clientName"`
	ServiceName            string  `json:"serviceName"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`

	DurationSource string  `json:"durationSource"`
	Notes          *string `json:"notes,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is the list DTO
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment converts a domain model into the DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                     a.ID,
		Title:                  a.Title,
		Date:                   a.Start.Format(domain.DateFormat),
		Time:                   a.Start.Format(domain.TimeFormat),
		EndTime:                a.End.Format(domain.TimeFormat),
		Start:                  a.Start.Format(time.RFC3339),
		End:                    a.End.Format(time.RFC3339),
		Status:                 string(a.Status),
		Duration:               a.DurationMinutes(),
		ClientID:               a.ClientID,
		ServiceID:              a.ServiceID,
		StylistID:              a.StylistID,
		ClientName:             a.ClientName,
		ServiceName:            a.ServiceName,
		ServicePrice:           a.ServicePrice,
		ServiceDurationMinutes: a.ServiceDurationMinutes,
		DurationSource:         string(a.DurationSource),
		Notes:                  a.Notes,
		Version:                a.Version,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a slice of domain models into the list DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainStatus converts a status string into domain.AppointmentStatus with validation
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.AppointmentStatus(status), nil
}
