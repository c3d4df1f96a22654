package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// Service covers the read, delete and lifecycle operations on appointments.
// Creation and rescheduling live in their own usecases because they need the
// validation engine and the catalog.
type Service struct {
	store  AppointmentStore
	repo   AppointmentRepository
	logger Logger
}

// NewService creates a new appointments service
func NewService(store AppointmentStore, repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		store:  store,
		repo:   repo,
		logger: logger,
	}
}

// GetByID fetches a single appointment
func (s *Service) GetByID(_ context.Context, id string) (*models.AppointmentResponse, error) {
	appt, ok := s.store.GetByID(id)
	if !ok {
		s.logger.Warn("GetByID: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	return models.FromDomainAppointment(appt), nil
}

// List returns appointments matching the filter, ordered by start time.
// Listings read through the repository so range and status predicates run
// as SQL; the store stays the source for by-id reads and mutations.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.repo.ListFiltered(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: returning %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus moves the appointment through its lifecycle. Only scheduled
// appointments can change status; completed, cancelled and no-show are
// terminal.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	appt, ok := s.store.GetByID(id)
	if !ok {
		s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	if !appt.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for id=%s", appt.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
	}

	updated, err := s.store.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: store error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - store error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, status)
	return models.FromDomainAppointment(updated), nil
}

// Delete removes the appointment permanently
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s removed", id)
	return nil
}
