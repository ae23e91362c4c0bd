package create_reservation

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TableID         int64            // ID стола
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "15:00")
	DurationMinutes int              // Длительность в минутах
	Seats           int              // Количество гостей
	CustomerName    string           // Имя гостя
	CustomerEmail   string           // Email для билета
	Comment         string           // Комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	TableID         int64
	TableName       string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Seats           int
	CustomerName    string
	CustomerEmail   string
	Comment         string
	Status          string

	// PublicCode код билета для страницы подтверждения
	PublicCode string

	// EmailSent признак успешной отправки письма с билетом.
	// Бронь создается даже при сбое доставки.
	EmailSent bool

	CreatedAt time.Time
}
