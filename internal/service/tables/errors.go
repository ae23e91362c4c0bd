package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrTableInUse возвращается при попытке удалить стол с бронированиями
	ErrTableInUse = errors.New("table has reservations and cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid table data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tables service: internal error")
)
