package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrTableBusy возвращается при возврате брони в занимающий статус,
	// когда стол уже занят другой бронью
	ErrTableBusy = errors.New("table is busy at the requested time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
