package schedule

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись расписания не найдена
	ErrEntryNotFound = errors.New("schedule.repository: entry not found")

	// ErrDuplicateEntry возвращается при нарушении уникальности дня
	ErrDuplicateEntry = errors.New("schedule.repository: duplicate entry for day")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
