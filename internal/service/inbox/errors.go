package inbox

import "errors"

var (
	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid contact message data")

	// ErrInvalidStatus возвращается при недопустимом статусе сообщения
	ErrInvalidStatus = errors.New("invalid message status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inbox service: internal error")
)
