package domain

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusNew       ReservationStatus = "NEW"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusNoShow    ReservationStatus = "NO_SHOW"
)

// AllStatuses перечень допустимых статусов бронирования
var AllStatuses = []ReservationStatus{
	StatusNew,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// OccupyingStatuses статусы, которые занимают стол при проверке пересечений.
// Отменённые и неявки слот не держат.
var OccupyingStatuses = []ReservationStatus{
	StatusNew,
	StatusConfirmed,
	StatusCompleted,
}

// IsValid reports whether the status is one of the known tokens.
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsOccupying reports whether a reservation in this status blocks
// overlapping reservations on the same table. This is the single
// definition of the occupying set; nothing else hardcodes it.
func (s ReservationStatus) IsOccupying() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Reservation represents a table reservation
type Reservation struct {
	ID              int64
	TableID         int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	EndTime         types.TimeString
	Seats           int
	CustomerName    string
	CustomerEmail   string
	Comment         string
	Status          ReservationStatus

	// PublicCode is the opaque ticket code, unique and immutable.
	PublicCode string

	// EmailSentAt is set only after the ticket email has been delivered.
	EmailSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying reports whether this reservation counts toward conflicts.
func (r *Reservation) IsOccupying() bool {
	return r.Status.IsOccupying()
}

// ComputeEndTime derives the end time from a start and a duration.
// Reservations never cross midnight, so an overflow is an error.
func ComputeEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	return start.AddMinutes(durationMinutes)
}

// Overlaps reports whether two half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching boundaries do not conflict: a reservation ending at
// 13:00 does not block one starting at 13:00.
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	TableID         *int64             // Фильтр по столу (опционально)
	Date            *time.Time         // Фильтр по дате (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	OnlyOccupying   bool               // Только занимающие стол статусы
	IncludeInactive bool               // Включать отменённые и неявки
}
