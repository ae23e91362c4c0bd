package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда игра или товар не найдены
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid catalog item data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
