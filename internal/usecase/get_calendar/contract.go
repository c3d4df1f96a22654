package get_calendar

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentStore is the read side of the appointment collection
type AppointmentStore interface {
	Snapshot() []*domain.Appointment
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
