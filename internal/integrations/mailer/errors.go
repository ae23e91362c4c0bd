package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках почтового клиента
	ErrInternal = errors.New("mailer: internal error")

	// ErrSendFailed возвращается, когда SMTP-сервер не принял письмо
	ErrSendFailed = errors.New("mailer: send failed")
)
