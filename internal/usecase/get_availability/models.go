package get_availability

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// Request модель запроса доступности. Состав ответа зависит от заполненных
// полей:
//   - StartTime задано: столы, свободные ровно в окне [start, start+duration)
//   - TableID задан: времена начала, доступные для этого стола
//   - иначе: сетка времен начала и столы, свободные хотя бы на один шаг
type Request struct {
	Date            time.Time         // Дата (без времени)
	StartTime       *types.TimeString // Точное время начала (опционально)
	DurationMinutes int               // Желаемая длительность в минутах
	Seats           int               // Количество гостей
	TableID         *int64            // Конкретный стол (опционально)
	StepMinutes     int               // Шаг сетки, 0 = значение по умолчанию
}

// TableOption стол, предлагаемый к бронированию
type TableOption struct {
	ID           int64
	Name         string
	Capacity     int
	LocationNote string
}

// Response модель ответа с вариантами бронирования
type Response struct {
	Date time.Time

	// IsOpen признак, что заведение работает в эту дату
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// Tables столы, подходящие под запрос, по возрастанию вместимости
	Tables []TableOption

	// StartTimes допустимые времена начала по сетке
	StartTimes []types.TimeString
}
