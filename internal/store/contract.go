package store

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Persistence is the outbound collaborator that makes mutations durable.
// The store writes through it before touching its in-memory collection, and
// reconciles whatever canonical record it returns (server-side timestamps,
// denormalized fields) back into memory.
type Persistence interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Appointment, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the store depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
