package inbox

import "errors"

var (
	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("inbox.repository: message not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inbox.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inbox.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inbox.repository: failed to scan row")
)
