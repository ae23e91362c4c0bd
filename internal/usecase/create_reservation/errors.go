package create_reservation

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден или выведен из обращения
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrNotEnoughCapacity возвращается, когда гостей больше, чем мест за столом
	ErrNotEnoughCapacity = errors.New("create_reservation: table capacity exceeded")

	// ErrInvalidDuration возвращается, когда длительность не входит в список допустимых
	ErrInvalidDuration = errors.New("create_reservation: duration is not allowed")

	// ErrVenueClosed возвращается, когда заведение закрыто в указанную дату
	ErrVenueClosed = errors.New("create_reservation: venue is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за рабочее окно
	ErrOutsideWorkingHours = errors.New("create_reservation: outside working hours")

	// ErrTableBusy возвращается, когда стол занят пересекающейся бронью
	ErrTableBusy = errors.New("create_reservation: table is busy at this time")

	// ErrTooLateToBook возвращается при нарушении минимального времени предупреждения
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrCodeCollision возвращается, когда не удалось сгенерировать уникальный код билета
	ErrCodeCollision = errors.New("create_reservation: failed to generate unique public code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
