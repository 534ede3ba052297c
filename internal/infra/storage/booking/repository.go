package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/pkg/psqlbuilder"
)

// bookingColumns column list shared by every select
var bookingColumns = []string{
	"id",
	"property_type",
	"frequency",
	"additional_services",
	"full_name",
	"email",
	"phone",
	"address",
	"city",
	"postcode",
	"contact_method",
	"preferred_date",
	"notes",
	"estimated_price",
	"requires_manual_quote",
	"status",
	"booking_reference",
	"source",
	"created_at",
	"updated_at",
}

// Repository postgres-backed booking store
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking record and returns it with the generated
// id and timestamps filled in
func (r *Repository) Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	services := make(pq.StringArray, 0, len(record.AdditionalServices))
	for _, svc := range record.AdditionalServices {
		services = append(services, string(svc))
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"property_type",
			"frequency",
			"additional_services",
			"full_name",
			"email",
			"phone",
			"address",
			"city",
			"postcode",
			"contact_method",
			"preferred_date",
			"notes",
			"estimated_price",
			"requires_manual_quote",
			"status",
			"booking_reference",
			"source",
		).
		Values(
			record.PropertyType,
			record.Frequency,
			services,
			record.FullName,
			record.Email,
			record.Phone,
			record.Address,
			record.City,
			record.Postcode,
			record.ContactMethod,
			record.PreferredDate,
			record.Notes,
			record.EstimatedPrice,
			record.RequiresManualQuote,
			record.Status,
			record.BookingReference,
			record.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetByID fetches a booking by primary key
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
}

// GetByReference fetches a booking by its human-readable reference code
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_reference": reference}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
}

// List fetches bookings matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Postcode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"postcode": *filter.Postcode})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		record, err := r.scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// UpdateStatus moves a booking to a new lifecycle status.
// Records are never deleted; cancellation is this update with the
// cancelled status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.BookingRecord, error) {
	record, err := r.scanBookingRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	return record, err
}

func (r *Repository) scanBookingRow(row rowScanner) (*domain.BookingRecord, error) {
	var (
		record    domain.BookingRecord
		services  pq.StringArray
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&record.ID,
		&record.PropertyType,
		&record.Frequency,
		&services,
		&record.FullName,
		&record.Email,
		&record.Phone,
		&record.Address,
		&record.City,
		&record.Postcode,
		&record.ContactMethod,
		&record.PreferredDate,
		&record.Notes,
		&record.EstimatedPrice,
		&record.RequiresManualQuote,
		&record.Status,
		&record.BookingReference,
		&record.Source,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
	}

	record.AdditionalServices = make([]domain.AdditionalService, 0, len(services))
	for _, svc := range services {
		record.AdditionalServices = append(record.AdditionalServices, domain.AdditionalService(svc))
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}
