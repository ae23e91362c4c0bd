package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/psqlbuilder"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

var reservationColumns = []string{
	"id",
	"table_id",
	"date",
	"start_time",
	"duration_minutes",
	"end_time",
	"seats",
	"customer_name",
	"customer_email",
	"comment",
	"status",
	"public_code",
	"email_sent_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation. A unique-index collision on public_code is
// reported as ErrDuplicateCode so the caller can regenerate the ticket code.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"table_id",
			"date",
			"start_time",
			"duration_minutes",
			"end_time",
			"seats",
			"customer_name",
			"customer_email",
			"comment",
			"status",
			"public_code",
		).
		Values(
			res.TableID,
			res.Date,
			res.StartTime,
			res.DurationMinutes,
			res.EndTime,
			res.Seats,
			res.CustomerName,
			res.CustomerEmail,
			res.Comment,
			res.Status,
			res.PublicCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: code=%s", ErrDuplicateCode, res.PublicCode)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPublicCode получает бронирование по коду билета
func (r *Repository) GetByPublicCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"public_code": code})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// ListOccupying returns the reservations that occupy tables on the given
// date (statuses outside CANCELLED/NO_SHOW), optionally narrowed to one
// table and excluding one reservation id (self-check on update).
//
// Inside a transaction the rows are locked with FOR UPDATE: the admission
// usecase reads the occupying set and inserts in the same serializable
// transaction, so two concurrent admissions for an overlapping window
// cannot both pass the conflict check.
func (r *Repository) ListOccupying(ctx context.Context, date time.Time, tableID *int64, excludeID *int64) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"status": occupying}).
		OrderBy("start_time ASC, id ASC")

	if tableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *tableID})
	}
	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией (для стафф-панели)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("date DESC, start_time DESC, id DESC")

	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	switch {
	case filter.Status != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	case filter.OnlyOccupying, !filter.IncludeInactive:
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupying})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// SetEmailSent записывает момент успешной отправки билета на email
func (r *Repository) SetEmailSent(ctx context.Context, id int64, at time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("email_sent_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetEmailSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetEmailSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetEmailSent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var emailSentAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.TableID,
		&res.Date,
		&res.StartTime,
		&res.DurationMinutes,
		&res.EndTime,
		&res.Seats,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.Comment,
		&res.Status,
		&res.PublicCode,
		&emailSentAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if emailSentAt.Valid {
		res.EmailSentAt = &emailSentAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
