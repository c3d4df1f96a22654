package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// AppointmentStore is the mutation model for appointments
type AppointmentStore interface {
	Create(ctx context.Context, data store.CreateData) (*domain.Appointment, error)
	Snapshot() []*domain.Appointment
}

// ScheduleValidator checks a proposed interval against the whole collection
type ScheduleValidator interface {
	ValidateInterval(start, end time.Time, appointments []*domain.Appointment, excludeID string) schedule.Result
}

// CatalogServiceClient resolves clients, services and stylists from the catalog
type CatalogServiceClient interface {
	GetClient(ctx context.Context, id string) (*catalogservice.Client, error)
	GetService(ctx context.Context, id string) (*catalogservice.Service, error)
	GetStylist(ctx context.Context, id string) (*catalogservice.Stylist, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
