package get_availability

import "errors"

var (
	// ErrTableNotFound возвращается, когда запрошенный стол не найден
	ErrTableNotFound = errors.New("get_availability: table not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
