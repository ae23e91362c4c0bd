package inbox

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/psqlbuilder"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

// Repository репозиторий входящих сообщений
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет входящее сообщение
func (r *Repository) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "phone", "message", "status").
		Values(m.Name, m.Phone, m.Message, m.Status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	m.CreatedAt = createdAt.Time
	return m, nil
}

// List получает сообщения, опционально по статусу, новые первыми
func (r *Repository) List(ctx context.Context, status *domain.MessageStatus) ([]*domain.ContactMessage, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "phone", "message", "status", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		var createdAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Message, &m.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return messages, nil
}

// UpdateStatus обновляет статус обработки сообщения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("contact_messages").
		Set("status", status).
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
		return ErrMessageNotFound
	}
	return nil
}
