package get_availability

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// gridCandidates генерирует сетку времен начала от открытия до закрытия
// с фиксированным шагом. Кандидат попадает в сетку, только если вся бронь
// [start, start+duration] помещается до закрытия включительно.
//
// Сетка не привязана к границам существующих броней: окно, лежащее строго
// между узлами сетки, не будет найдено. Это принятое приближение, шаг
// настраивается параметром запроса.
func gridCandidates(window *domain.WorkingWindow, durationMinutes, stepMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	current := window.OpenTime
	for !current.IsAfter(window.CloseTime) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец брони перешел бы через полночь
			break
		}
		if end.IsAfter(window.CloseTime) {
			break
		}

		candidates = append(candidates, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return candidates
}

// beforeCutoff проверяет, что момент начала в часовом поясе заведения
// раньше отсечки минимального предупреждения
func beforeCutoff(date time.Time, start types.TimeString, loc *time.Location, cutoff time.Time) bool {
	mins, err := start.Minutes()
	if err != nil {
		return true
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, loc)
	return startAt.Before(cutoff)
}

// groupByTable группирует занимающие брони по столам
func groupByTable(reservations []*domain.Reservation) map[int64][]*domain.Reservation {
	byTable := make(map[int64][]*domain.Reservation)
	for _, res := range reservations {
		byTable[res.TableID] = append(byTable[res.TableID], res)
	}
	return byTable
}

// tableFree проверяет, что ни одна из броней стола не пересекается с окном
func tableFree(busy []*domain.Reservation, start, end types.TimeString) bool {
	for _, res := range busy {
		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			return false
		}
	}
	return true
}
