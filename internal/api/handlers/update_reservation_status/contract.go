package update_reservation_status

import (
	"context"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
