package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Bot API
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrDisabled возвращается, когда уведомления в Telegram выключены в настройках
	ErrDisabled = errors.New("telegram notifications disabled")
)
