// Package txmanager исполняет функции в сериализуемых транзакциях PostgreSQL.
//
// Проверка занятости и вставка бронирования должны быть изолированы от
// конкурентных запросов: два одновременных запроса на один стол и
// пересекающееся окно не могут пройти оба. Сериализуемый уровень изоляции
// плюс ограниченное число повторов при serialization failure дают ровно
// одну успешную транзакцию.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const defaultMaxRetries = 3

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization возвращается, когда все повторы исчерпаны
	ErrSerialization = errors.New("txmanager: serialization conflict, retries exhausted")
)

// TransactionManager runs functions inside serializable transactions.
type TransactionManager struct {
	db         *sql.DB
	maxRetries int
}

// NewTransactionManager creates a manager over the given database handle.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db, maxRetries: defaultMaxRetries}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction. The
// transaction is exposed to repositories through the context (see WithTx).
// Serialization failures and deadlocks are retried up to maxRetries times;
// business errors returned by fn roll back and are returned as-is.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBeginTx, err)
		}

		err = fn(WithTx(ctx, tx))
		if err != nil {
			_ = tx.Rollback()
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: %v", ErrCommitTx, err)
		}
		return nil
	}

	return fmt.Errorf("%w: %v", ErrSerialization, lastErr)
}

// isRetryable reports whether the error is a PostgreSQL serialization
// failure (40001) or deadlock (40P01).
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
