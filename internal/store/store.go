// Package store owns the in-memory appointment collection. All mutations go
// through it; the validation engine and the calendar projection only ever
// read snapshots. Mutations are written through the persistence collaborator
// first and applied to memory only once the collaborator's canonical record
// comes back, so a failed network call never leaves a phantom appointment.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateData is the material for a new appointment: catalog references, the
// denormalized snapshot the caller already resolved, and the requested time.
// The store derives start/end and the duration origin from it. Validation is
// the caller's responsibility and must happen before Create.
type CreateData struct {
	ClientID  string
	ServiceID string
	StylistID string

	ClientName             string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	Date time.Time
	Time string // "HH:MM"

	// Optional overrides. When either is set, the duration origin is
	// explicit; otherwise the service duration (or the 60-minute default)
	// applies.
	EndTime         *string // "HH:MM"
	DurationMinutes *int

	Notes *string
}

// UpdatePatch is a partial update. Nil fields are left untouched.
//
// Time resolution precedence: Start wins over Date/Time; End wins over
// EndTime, which wins over DurationMinutes. When the start moves and no end
// information is supplied, the previous duration is preserved.
type UpdatePatch struct {
	ClientID   *string
	ClientName *string

	ServiceID              *string
	ServiceName            *string
	ServicePrice           *float64
	ServiceDurationMinutes *int

	StylistID *string

	Date *time.Time
	Time *string // "HH:MM"

	Start *time.Time
	End   *time.Time

	EndTime         *string // "HH:MM"
	DurationMinutes *int

	Notes *string
}

// Store is the single owner of the appointment collection. One writer at a
// time; readers get copies.
type Store struct {
	mu           sync.Mutex
	appointments map[string]*domain.Appointment

	persistence  Persistence
	timeProvider TimeProvider
	newID        func() string
	logger       Logger

	observers []func()
}

// New creates an empty store backed by the given persistence collaborator.
func New(persistence Persistence, logger Logger) *Store {
	return &Store{
		appointments: make(map[string]*domain.Appointment),
		persistence:  persistence,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Load replaces the in-memory collection with the persisted one. Called at
// startup and whenever the caller decides local state may be stale.
func (s *Store) Load(ctx context.Context) error {
	appts, err := s.persistence.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	s.appointments = make(map[string]*domain.Appointment, len(appts))
	for _, appt := range appts {
		s.appointments[appt.ID] = appt.Clone()
	}
	s.mu.Unlock()

	s.logger.Info("store: loaded %d appointments", len(appts))
	s.notify()
	return nil
}

// Create builds a new appointment from data, persists it and adds it to the
// collection. The new appointment starts in status scheduled.
func (s *Store) Create(ctx context.Context, data CreateData) (*domain.Appointment, error) {
	appt, err := s.build(data)
	if err != nil {
		return nil, err
	}

	created, err := s.persistence.Create(ctx, appt)
	if err != nil {
		s.logger.Error("store: create id=%s failed: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: Create: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	s.appointments[created.ID] = created.Clone()
	s.mu.Unlock()

	s.logger.Info("store: created appointment id=%s title=%q", created.ID, created.Title)
	s.notify()
	return created.Clone(), nil
}

// Update merges patch into the appointment, persists the result and swaps it
// into the collection. Returns ErrAppointmentNotFound for unknown ids.
func (s *Store) Update(ctx context.Context, id string, patch UpdatePatch) (*domain.Appointment, error) {
	s.mu.Lock()
	current, ok := s.appointments[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrAppointmentNotFound
	}
	merged, err := s.merge(current, patch)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	updated, err := s.persistence.Update(ctx, merged)
	if err != nil {
		s.logger.Error("store: update id=%s failed: %v", id, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	// A stale response must not clobber a newer committed edit.
	if existing, ok := s.appointments[id]; !ok || existing.Version > updated.Version {
		s.mu.Unlock()
		s.logger.Warn("store: dropping stale update response for id=%s", id)
		return updated.Clone(), nil
	}
	s.appointments[id] = updated.Clone()
	s.mu.Unlock()

	s.logger.Info("store: updated appointment id=%s version=%d", id, updated.Version)
	s.notify()
	return updated.Clone(), nil
}

// SetStatus changes the appointment status. Transition legality is the
// calling layer's decision; the store only records it.
func (s *Store) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	s.mu.Lock()
	current, ok := s.appointments[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrAppointmentNotFound
	}
	merged := current.Clone()
	merged.Status = status
	merged.UpdatedAt = s.timeProvider.Now()
	merged.Version = current.Version + 1
	s.mu.Unlock()

	updated, err := s.persistence.Update(ctx, merged)
	if err != nil {
		s.logger.Error("store: set status id=%s failed: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	s.appointments[id] = updated.Clone()
	s.mu.Unlock()

	s.logger.Info("store: appointment id=%s status=%s", id, status)
	s.notify()
	return updated.Clone(), nil
}

// Delete removes the appointment. Deletion is immediate and irreversible
// from the store's point of view.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.appointments[id]
	s.mu.Unlock()
	if !ok {
		return ErrAppointmentNotFound
	}

	if err := s.persistence.Delete(ctx, id); err != nil {
		s.logger.Error("store: delete id=%s failed: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	delete(s.appointments, id)
	s.mu.Unlock()

	s.logger.Info("store: deleted appointment id=%s", id)
	s.notify()
	return nil
}

// GetByID looks up an appointment. Absence is a valid outcome, not an error.
func (s *Store) GetByID(id string) (*domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	return appt.Clone(), true
}

// Snapshot returns a copy of the collection ordered by start time. Readers
// (validation, projection) work on snapshots and never see internal state.
func (s *Store) Snapshot() []*domain.Appointment {
	s.mu.Lock()
	appts := make([]*domain.Appointment, 0, len(s.appointments))
	for _, appt := range s.appointments {
		appts = append(appts, appt.Clone())
	}
	s.mu.Unlock()

	sort.Slice(appts, func(i, j int) bool {
		if appts[i].Start.Equal(appts[j].Start) {
			return appts[i].ID < appts[j].ID
		}
		return appts[i].Start.Before(appts[j].Start)
	})
	return appts
}

// Subscribe registers fn to run after every committed mutation. Replaces the
// original system's implicit re-render triggers with an explicit hook.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

func (s *Store) build(data CreateData) (*domain.Appointment, error) {
	startTime, err := types.NewTimeStringFromString(data.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	if data.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start := startTime.At(data.Date)
	end, source, err := resolveEnd(start, data.EndTime, data.DurationMinutes, data.ServiceDurationMinutes)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	return &domain.Appointment{
		ID:                     s.newID(),
		Title:                  fmt.Sprintf("%s - %s", data.ClientName, data.ServiceName),
		ClientID:               data.ClientID,
		ServiceID:              data.ServiceID,
		StylistID:              data.StylistID,
		Start:                  start,
		End:                    end,
		Status:                 domain.StatusScheduled,
		DurationSource:         source,
		Notes:                  data.Notes,
		ClientName:             data.ClientName,
		ServiceName:            data.ServiceName,
		ServicePrice:           data.ServicePrice,
		ServiceDurationMinutes: data.ServiceDurationMinutes,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

// resolveEnd derives the end instant and the duration origin. An explicit
// end or duration wins; otherwise the service's standard duration applies,
// falling back to the default when the catalog has none.
func resolveEnd(start time.Time, endTime *string, durationMinutes *int, serviceMinutes int) (time.Time, domain.DurationSource, error) {
	if endTime != nil {
		ts, err := types.NewTimeStringFromString(*endTime)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		end := ts.At(start)
		// End at or before start crosses midnight.
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		return end, domain.DurationExplicit, nil
	}

	if durationMinutes != nil {
		if *durationMinutes <= 0 {
			return time.Time{}, "", fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		return start.Add(time.Duration(*durationMinutes) * time.Minute), domain.DurationExplicit, nil
	}

	minutes := serviceMinutes
	if minutes <= 0 {
		minutes = domain.DefaultServiceDurationMinutes
	}
	return start.Add(time.Duration(minutes) * time.Minute), domain.DurationFromService, nil
}

func (s *Store) merge(current *domain.Appointment, patch UpdatePatch) (*domain.Appointment, error) {
	merged := current.Clone()

	if patch.ClientID != nil {
		merged.ClientID = *patch.ClientID
	}
	if patch.ClientName != nil {
		merged.ClientName = *patch.ClientName
	}
	if patch.ServiceID != nil {
		merged.ServiceID = *patch.ServiceID
	}
	if patch.ServiceName != nil {
		merged.ServiceName = *patch.ServiceName
	}
	if patch.ServicePrice != nil {
		merged.ServicePrice = *patch.ServicePrice
	}
	if patch.ServiceDurationMinutes != nil {
		merged.ServiceDurationMinutes = *patch.ServiceDurationMinutes
	}
	if patch.StylistID != nil {
		merged.StylistID = *patch.StylistID
	}
	if patch.ClientName != nil || patch.ServiceName != nil {
		merged.Title = fmt.Sprintf("%s - %s", merged.ClientName, merged.ServiceName)
	}

	newStart, startMoved, err := resolveStart(current, patch)
	if err != nil {
		return nil, err
	}
	merged.Start = newStart

	switch {
	case patch.End != nil:
		if !patch.End.After(newStart) {
			return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
		}
		merged.End = *patch.End
		merged.DurationSource = domain.DurationExplicit

	case patch.EndTime != nil:
		ts, err := types.NewTimeStringFromString(*patch.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		end := ts.At(newStart)
		if !end.After(newStart) {
			end = end.AddDate(0, 0, 1)
		}
		merged.End = end
		merged.DurationSource = domain.DurationExplicit

	case patch.DurationMinutes != nil:
		if *patch.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		merged.End = newStart.Add(time.Duration(*patch.DurationMinutes) * time.Minute)
		merged.DurationSource = domain.DurationExplicit

	case startMoved:
		// The start moved with no end supplied: the previous duration
		// travels with the appointment.
		merged.End = newStart.Add(current.Duration())
	}

	if patch.Notes != nil {
		merged.Notes = patch.Notes
	}

	merged.UpdatedAt = s.timeProvider.Now()
	merged.Version = current.Version + 1
	return merged, nil
}

func resolveStart(current *domain.Appointment, patch UpdatePatch) (time.Time, bool, error) {
	if patch.Start != nil {
		return *patch.Start, true, nil
	}
	if patch.Date == nil && patch.Time == nil {
		return current.Start, false, nil
	}

	day := current.Start
	if patch.Date != nil {
		day = *patch.Date
	}

	tod := types.NewTimeString(current.Start)
	if patch.Time != nil {
		parsed, err := types.NewTimeStringFromString(*patch.Time)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
		}
		tod = parsed
	}

	return tod.At(day), true, nil
}
