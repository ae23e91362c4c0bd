package calendar

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись расписания не найдена
	ErrEntryNotFound = errors.New("schedule entry not found")

	// ErrDuplicateSpecialDay возвращается, когда особый день на дату уже существует
	ErrDuplicateSpecialDay = errors.New("special day already exists for this date")

	// ErrInvalidInput возвращается при некорректных данных расписания
	ErrInvalidInput = errors.New("invalid schedule data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar service: internal error")
)
