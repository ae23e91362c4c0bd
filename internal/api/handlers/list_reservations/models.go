package list_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/ptr"
)

// ReservationItem HTTP модель бронирования в списке
type ReservationItem struct {
	ID              int64  `json:"id"`
	TableID         int64  `json:"tableId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Seats           int    `json:"seats"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	Comment         string `json:"comment,omitempty"`
	Status          string `json:"status"`
	PublicCode      string `json:"publicCode"`
	EmailSentAt     string `json:"emailSentAt,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Reservations []ReservationItem `json:"reservations"`
}

// parseQuery разбирает query-параметры в фильтр
func parseQuery(q url.Values) (domain.ReservationsFilter, error) {
	var filter domain.ReservationsFilter

	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, fmt.Errorf("date: %w", err)
		}
		filter.Date = ptr.Ptr(date)
	}

	if raw := q.Get("tableId"); raw != "" {
		tableID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("tableId: %w", err)
		}
		filter.TableID = ptr.Ptr(tableID)
	}

	if raw := q.Get("status"); raw != "" {
		filter.Status = ptr.Ptr(domain.ReservationStatus(raw))
	}

	filter.IncludeInactive = q.Get("includeInactive") == "true"

	return filter, nil
}

// FromDomainList конвертирует бронирования в HTTP response
func FromDomainList(list []*domain.Reservation) *ListResponse {
	out := &ListResponse{Reservations: make([]ReservationItem, 0, len(list))}
	for _, res := range list {
		item := ReservationItem{
			ID:              res.ID,
			TableID:         res.TableID,
			Date:            res.Date.Format(domain.DateFormat),
			StartTime:       res.StartTime.String(),
			EndTime:         res.EndTime.String(),
			DurationMinutes: res.DurationMinutes,
			Seats:           res.Seats,
			CustomerName:    res.CustomerName,
			CustomerEmail:   res.CustomerEmail,
			Comment:         res.Comment,
			Status:          string(res.Status),
			PublicCode:      res.PublicCode,
			CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		}
		if res.EmailSentAt != nil {
			item.EmailSentAt = res.EmailSentAt.Format(time.RFC3339)
		}
		out.Reservations = append(out.Reservations, item)
	}
	return out
}
