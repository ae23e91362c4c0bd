package create_reservation

import (
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	createReservation "github.com/dev4ox/anti-cafe-reservation/internal/usecase/create_reservation"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID         int64  `json:"tableId"`
	Date            string `json:"date"`      // "2026-03-02"
	StartTime       string `json:"startTime"` // "15:00"
	DurationMinutes int    `json:"durationMinutes"`
	Seats           int    `json:"seats"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	Comment         string `json:"comment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	TableID         int64  `json:"tableId"`
	TableName       string `json:"tableName"`
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
	EmailSent       bool   `json:"emailSent"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TableID:         r.TableID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Seats:           r.Seats,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		Comment:         r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		TableID:         resp.TableID,
		TableName:       resp.TableName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Seats:           resp.Seats,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		Comment:         resp.Comment,
		Status:          resp.Status,
		PublicCode:      resp.PublicCode,
		EmailSent:       resp.EmailSent,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
