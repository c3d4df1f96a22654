package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"title",
	"client_id",
	"client_name",
	"service_id",
	"service_name",
	"service_price",
	"service_duration_minutes",
	"stylist_id",
	"start_time",
	"end_time",
	"status",
	"duration_source",
	"notes",
	"version",
	"created_at",
	"updated_at",
}

// Repository is the Postgres persistence for appointments
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and returns it with server-side timestamps
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"title",
			"client_id",
			"client_name",
			"service_id",
			"service_name",
			"service_price",
			"service_duration_minutes",
			"stylist_id",
			"start_time",
			"end_time",
			"status",
			"duration_source",
			"notes",
			"version",
		).
		Values(
			appt.ID,
			appt.Title,
			appt.ClientID,
			appt.ClientName,
			appt.ServiceID,
			appt.ServiceName,
			appt.ServicePrice,
			appt.ServiceDurationMinutes,
			appt.StylistID,
			appt.Start,
			appt.End,
			appt.Status,
			appt.DurationSource,
			appt.Notes,
			appt.Version,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := appt.Clone()

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return created, nil
}

// Update rewrites all mutable columns of the appointment
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Update("appointments").
		Set("title", appt.Title).
		Set("client_id", appt.ClientID).
		Set("client_name", appt.ClientName).
		Set("service_id", appt.ServiceID).
		Set("service_name", appt.ServiceName).
		Set("service_price", appt.ServicePrice).
		Set("service_duration_minutes", appt.ServiceDurationMinutes).
		Set("stylist_id", appt.StylistID).
		Set("start_time", appt.Start).
		Set("end_time", appt.End).
		Set("status", appt.Status).
		Set("duration_source", appt.DurationSource).
		Set("notes", appt.Notes).
		Set("version", appt.Version).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated := appt.Clone()

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	updated.CreatedAt = createdAt.Time
	updated.UpdatedAt = updatedAt.Time

	return updated, nil
}

// Delete removes the appointment permanently
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// List returns every appointment ordered by start time
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListFiltered returns appointments matching the filter, ordered by start time
func (r *Repository) ListFiltered(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.StylistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"stylist_id": *filter.StylistID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("start_time ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments scans query results into a slice of appointments
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Title,
			&appt.ClientID,
			&appt.ClientName,
			&appt.ServiceID,
			&appt.ServiceName,
			&appt.ServicePrice,
			&appt.ServiceDurationMinutes,
			&appt.StylistID,
			&appt.Start,
			&appt.End,
			&appt.Status,
			&appt.DurationSource,
			&appt.Notes,
			&appt.Version,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
