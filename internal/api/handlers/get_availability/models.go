package get_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	getAvailability "github.com/dev4ox/anti-cafe-reservation/internal/usecase/get_availability"
	"github.com/dev4ox/anti-cafe-reservation/pkg/ptr"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// TableOption HTTP модель стола
type TableOption struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	LocationNote string `json:"locationNote,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string        `json:"date"`
	IsOpen     bool          `json:"isOpen"`
	OpenTime   string        `json:"openTime,omitempty"`
	CloseTime  string        `json:"closeTime,omitempty"`
	Tables     []TableOption `json:"tables"`
	StartTimes []string      `json:"startTimes"`
}

// parseQuery разбирает query-параметры в модель use case
func parseQuery(q url.Values) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	duration, err := strconv.Atoi(q.Get("duration"))
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}

	seats := 1
	if raw := q.Get("seats"); raw != "" {
		seats, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("seats: %w", err)
		}
	}

	req := &getAvailability.Request{
		Date:            date,
		DurationMinutes: duration,
		Seats:           seats,
	}

	if raw := q.Get("start"); raw != "" {
		start, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		req.StartTime = ptr.Ptr(start)
	}

	if raw := q.Get("tableId"); raw != "" {
		tableID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tableId: %w", err)
		}
		req.TableID = ptr.Ptr(tableID)
	}

	if raw := q.Get("step"); raw != "" {
		step, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
		req.StepMinutes = step
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		IsOpen:     resp.IsOpen,
		Tables:     make([]TableOption, 0, len(resp.Tables)),
		StartTimes: make([]string, 0, len(resp.StartTimes)),
	}
	if resp.IsOpen {
		out.OpenTime = resp.OpenTime.String()
		out.CloseTime = resp.CloseTime.String()
	}
	for _, t := range resp.Tables {
		out.Tables = append(out.Tables, TableOption{
			ID:           t.ID,
			Name:         t.Name,
			Capacity:     t.Capacity,
			LocationNote: t.LocationNote,
		})
	}
	for _, start := range resp.StartTimes {
		out.StartTimes = append(out.StartTimes, start.String())
	}
	return out
}
