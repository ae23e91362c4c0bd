package table

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrTableInUse возвращается при попытке удалить стол с бронированиями
	// (внешний ключ с RESTRICT защищает историю)
	ErrTableInUse = errors.New("table.repository: table has reservations and cannot be deleted")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("table.repository: failed to scan row")
)
