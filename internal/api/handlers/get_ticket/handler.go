package get_ticket

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationsService "github.com/dev4ox/anti-cafe-reservation/internal/service/reservations"
)

const (
	msgTicketNotFound = "билет не найден"
)

// TicketResponse публичная карточка билета. Email гостя наружу не отдается.
type TicketResponse struct {
	PublicCode   string `json:"publicCode"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Seats        int    `json:"seats"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	TableName    string `json:"tableName,omitempty"`
	EmailSentAt  string `json:"emailSentAt,omitempty"`
}

type Handler struct {
	reservations ReservationsService
	tables       TablesService
	logger       Logger
}

func NewHandler(reservations ReservationsService, tables TablesService, logger Logger) *Handler {
	return &Handler{
		reservations: reservations,
		tables:       tables,
		logger:       logger,
	}
}

// Handle GET /api/v1/tickets/{publicCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["publicCode"]

	res, err := h.reservations.GetByPublicCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			h.logger.Warn("GET /tickets - Ticket not found: code=%s", code)
			handlers.RespondNotFound(w, msgTicketNotFound)
			return
		}
		h.logger.Error("GET /tickets - Failed: code=%s, error=%v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &TicketResponse{
		PublicCode:   res.PublicCode,
		Date:         res.Date.Format(domain.DateFormat),
		StartTime:    res.StartTime.String(),
		EndTime:      res.EndTime.String(),
		Seats:        res.Seats,
		CustomerName: res.CustomerName,
		Status:       string(res.Status),
	}
	if res.EmailSentAt != nil {
		resp.EmailSentAt = res.EmailSentAt.Format(time.RFC3339)
	}

	// Имя стола не критично для билета, ошибка не фатальна
	if table, err := h.tables.GetByID(r.Context(), res.TableID); err == nil {
		resp.TableName = table.Name
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
