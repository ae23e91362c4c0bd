package domain

import "time"

// Table represents a seatable unit with a capacity, bookable per time window
type Table struct {
	ID           int64
	Name         string
	Capacity     int
	IsActive     bool
	LocationNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanSeat reports whether the table fits the requested party size.
func (t *Table) CanSeat(seats int) bool {
	return seats > 0 && seats <= t.Capacity
}
