package domain

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// WeeklySchedule describes the recurring operating hours for one day of week.
// DayOfWeek uses 0=Monday ... 6=Sunday, one entry per day.
type WeeklySchedule struct {
	ID        int64
	DayOfWeek int
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// SpecialDay overrides the weekly schedule for one calendar date.
type SpecialDay struct {
	ID        int64
	Date      time.Time
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
	Note      string
}

// WorkingWindow is the resolved operating window for a date.
type WorkingWindow struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Contains reports whether [start,end] fits inside the window, boundaries
// inclusive: a reservation may start exactly at opening and end exactly at
// closing.
func (w *WorkingWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.OpenTime) && !end.IsAfter(w.CloseTime)
}

// DayOfWeekFromDate converts time.Weekday (Sunday=0) to the stored
// convention (Monday=0 ... Sunday=6).
func DayOfWeekFromDate(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// ResolveWindow resolves the operating window from a special-day override and
// a weekly entry, either of which may be absent. A special day fully decides
// the result when present, the weekly entry is ignored. An entry that
// is marked open but misses either time is malformed and treated as closed.
// Returns nil when the venue is closed.
func ResolveWindow(special *SpecialDay, weekly *WeeklySchedule) *WorkingWindow {
	if special != nil {
		if !special.IsOpen || special.OpenTime == nil || special.CloseTime == nil {
			return nil
		}
		return &WorkingWindow{OpenTime: *special.OpenTime, CloseTime: *special.CloseTime}
	}

	if weekly == nil || !weekly.IsOpen || weekly.OpenTime == nil || weekly.CloseTime == nil {
		return nil
	}
	return &WorkingWindow{OpenTime: *weekly.OpenTime, CloseTime: *weekly.CloseTime}
}
