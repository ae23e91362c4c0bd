package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/psqlbuilder"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

var tableColumns = []string{
	"id",
	"name",
	"capacity",
	"is_active",
	"location_note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
func (r *Repository) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns("name", "capacity", "is_active", "location_note").
		Values(t.Name, t.Capacity, t.IsActive, t.LocationNote).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return t, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}
	return t, nil
}

// List получает все столы, опционально только активные
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Table, error) {
	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("tables").
		OrderBy("capacity ASC, name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return r.list(ctx, selectBuilder)
}

// ListBookable returns active tables that can seat the requested party size,
// ordered by ascending capacity then name: the smallest adequate table comes
// first, name breaks capacity ties deterministically.
func (r *Repository) ListBookable(ctx context.Context, minSeats int) ([]*domain.Table, error) {
	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.GtOrEq{"capacity": minSeats}).
		OrderBy("capacity ASC, name ASC")

	return r.list(ctx, selectBuilder)
}

func (r *Repository) list(ctx context.Context, selectBuilder squirrel.SelectBuilder) ([]*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}
	return tables, nil
}

// Update обновляет стол
func (r *Repository) Update(ctx context.Context, id int64, t *domain.Table) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("name", t.Name).
		Set("capacity", t.Capacity).
		Set("is_active", t.IsActive).
		Set("location_note", t.LocationNote).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	t.ID = id
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return t, nil
}

// Delete physically removes a table. The reservations foreign key is
// RESTRICT, so a table with any reservation history cannot be deleted,
// deactivate it instead.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrTableInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var t domain.Table
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Capacity,
		&t.IsActive,
		&t.LocationNote,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}
