package appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentStore is the in-memory collection the service reads from and
// mutates through
type AppointmentStore interface {
	GetByID(id string) (*domain.Appointment, bool)
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository serves filtered listings straight from storage, so
// range and status queries stay in SQL instead of scanning the collection
type AppointmentRepository interface {
	ListFiltered(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
