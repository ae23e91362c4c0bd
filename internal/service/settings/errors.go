package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid settings data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings service: internal error")
)
