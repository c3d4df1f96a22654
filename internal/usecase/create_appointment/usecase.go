package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogClient "github.com/m04kA/SMC-SalonService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase creates an appointment: resolves the catalog references, checks
// the proposed interval against every other appointment on that day and
// commits it to the store.
type UseCase struct {
	store     AppointmentStore
	validator ScheduleValidator
	catalog   CatalogServiceClient
	logger    Logger
}

// NewUseCase creates a new create appointment use case
func NewUseCase(
	store AppointmentStore,
	validator ScheduleValidator,
	catalog CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		validator: validator,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute runs the create appointment use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%s, stylist=%s, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.StylistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the client
	client, err := uc.catalog.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Resolve the service
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Resolve the stylist
	if _, err := uc.catalog.GetStylist(ctx, req.StylistID); err != nil {
		if errors.Is(err, catalogClient.ErrStylistNotFound) {
			uc.logger.Warn("CreateAppointment: stylist id=%s not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get stylist id=%s: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	// 5. Check the proposed interval against the whole schedule
	start, end := proposedInterval(req, service.DurationMinutes)
	if result := uc.validator.ValidateInterval(start, end, uc.store.Snapshot(), ""); !result.Valid {
		uc.logger.Warn("CreateAppointment: schedule rejected interval %s - %s: %s",
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), result.Reason)
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, result.Reason)
	}

	// 6. Commit, denormalizing the catalog snapshot onto the appointment
	data := store.CreateData{
		ClientID:               req.ClientID,
		ServiceID:              req.ServiceID,
		StylistID:              req.StylistID,
		ClientName:             client.Name,
		ServiceName:            service.Name,
		ServicePrice:           service.Price,
		ServiceDurationMinutes: service.DurationMinutes,
		Date:                   req.Date,
		Time:                   req.StartTime.String(),
		DurationMinutes:        req.DurationMinutes,
		Notes:                  req.Notes,
	}
	if req.EndTime != nil {
		endStr := req.EndTime.String()
		data.EndTime = &endStr
	}

	created, err := uc.store.Create(ctx, data)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", created.ID)
	return toResponse(created), nil
}
