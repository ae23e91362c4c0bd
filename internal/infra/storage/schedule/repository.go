package schedule

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

// Repository репозиторий для недельного графика и особых дней
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyByDay получает запись недельного графика на день недели (0=Пн ... 6=Вс)
func (r *Repository) GetWeeklyByDay(ctx context.Context, dayOfWeek int) (*domain.WeeklySchedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "is_open", "open_time", "close_time").
		From("weekly_schedule").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyByDay - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.WeeklySchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.DayOfWeek,
		&entry.IsOpen,
		&entry.OpenTime,
		&entry.CloseTime,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyByDay - scan entry: %v", ErrScanRow, err)
	}
	return &entry, nil
}

// ListWeekly получает весь недельный график, упорядоченный по дню недели
func (r *Repository) ListWeekly(ctx context.Context) ([]*domain.WeeklySchedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "is_open", "open_time", "close_time").
		From("weekly_schedule").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WeeklySchedule, 0, 7)
	for rows.Next() {
		var entry domain.WeeklySchedule
		if err := rows.Scan(&entry.ID, &entry.DayOfWeek, &entry.IsOpen, &entry.OpenTime, &entry.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: ListWeekly - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWeekly - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}

// UpsertWeekly создает или обновляет запись недельного графика на день
func (r *Repository) UpsertWeekly(ctx context.Context, entry *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_schedule").
		Columns("day_of_week", "is_open", "open_time", "close_time").
		Values(entry.DayOfWeek, entry.IsOpen, entry.OpenTime, entry.CloseTime).
		Suffix(`ON CONFLICT (day_of_week) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time
			RETURNING id`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("%w: UpsertWeekly - execute upsert: %v", ErrExecQuery, err)
	}
	return entry, nil
}

// GetSpecialByDate получает запись особого дня на дату
func (r *Repository) GetSpecialByDate(ctx context.Context, date time.Time) (*domain.SpecialDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "is_open", "open_time", "close_time", "note").
		From("special_days").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.SpecialDay
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&day.Date,
		&day.IsOpen,
		&day.OpenTime,
		&day.CloseTime,
		&day.Note,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialByDate - scan entry: %v", ErrScanRow, err)
	}
	return &day, nil
}

// ListSpecial получает особые дни начиная с даты (для стафф-панели)
func (r *Repository) ListSpecial(ctx context.Context, from *time.Time) ([]*domain.SpecialDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "date", "is_open", "open_time", "close_time", "note").
		From("special_days").
		OrderBy("date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *from})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecial - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecial - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.SpecialDay, 0)
	for rows.Next() {
		var day domain.SpecialDay
		if err := rows.Scan(&day.ID, &day.Date, &day.IsOpen, &day.OpenTime, &day.CloseTime, &day.Note); err != nil {
			return nil, fmt.Errorf("%w: ListSpecial - scan row: %v", ErrScanRow, err)
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpecial - rows error: %v", ErrScanRow, err)
	}
	return days, nil
}

// CreateSpecial создает особый день (дата уникальна)
func (r *Repository) CreateSpecial(ctx context.Context, day *domain.SpecialDay) (*domain.SpecialDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_days").
		Columns("date", "is_open", "open_time", "close_time", "note").
		Values(day.Date, day.IsOpen, day.OpenTime, day.CloseTime, day.Note).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSpecial - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&day.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: CreateSpecial - execute insert: %v", ErrExecQuery, err)
	}
	return day, nil
}

// UpdateSpecial обновляет особый день
func (r *Repository) UpdateSpecial(ctx context.Context, id int64, day *domain.SpecialDay) (*domain.SpecialDay, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("special_days").
		Set("is_open", day.IsOpen).
		Set("open_time", day.OpenTime).
		Set("close_time", day.CloseTime).
		Set("note", day.Note).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecial - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&day.Date)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSpecial - execute update: %v", ErrExecQuery, err)
	}

	day.ID = id
	return day, nil
}

// DeleteSpecial удаляет особый день
func (r *Repository) DeleteSpecial(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSpecial - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecial - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecial - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
