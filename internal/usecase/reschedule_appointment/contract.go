package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// AppointmentStore is the mutation model for appointments
type AppointmentStore interface {
	GetByID(id string) (*domain.Appointment, bool)
	Update(ctx context.Context, id string, patch store.UpdatePatch) (*domain.Appointment, error)
	Snapshot() []*domain.Appointment
}

// ScheduleValidator checks a proposed interval against the whole collection
type ScheduleValidator interface {
	ValidateInterval(start, end time.Time, appointments []*domain.Appointment, excludeID string) schedule.Result
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
