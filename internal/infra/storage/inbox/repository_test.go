package inbox

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO contact_messages (name,phone,message,status) VALUES ($1,$2,$3,$4) RETURNING id, created_at",
	)).
		WithArgs("Иван", "+381601234567", "Хочу забронировать зал", domain.MessageStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	msg, err := repo.Create(context.Background(), &domain.ContactMessage{
		Name:    "Иван",
		Phone:   "+381601234567",
		Message: "Хочу забронировать зал",
		Status:  domain.MessageStatusNew,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.ID)
	assert.Equal(t, createdAt, msg.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_FilterByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "message", "status", "created_at"}).
		AddRow(int64(2), "Анна", "+381601111111", "Есть ли Каркассон?", "NEW", time.Now()).
		AddRow(int64(1), "Пётр", "+381602222222", "Работаете ли 8 марта?", "NEW", time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, phone, message, status, created_at FROM contact_messages WHERE status = $1 ORDER BY created_at DESC",
	)).
		WithArgs("NEW").
		WillReturnRows(rows)

	status := domain.MessageStatusNew
	list, err := repo.List(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "Анна", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_All(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, phone, message, status, created_at FROM contact_messages ORDER BY created_at DESC",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "message", "status", "created_at"}))

	list, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE contact_messages SET status = $1 WHERE id = $2",
	)).
		WithArgs(domain.MessageStatusDone, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 5, domain.MessageStatusDone)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE contact_messages SET status = $1 WHERE id = $2",
	)).
		WithArgs(domain.MessageStatusDone, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.MessageStatusDone)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
