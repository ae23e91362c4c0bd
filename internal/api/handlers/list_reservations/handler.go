package list_reservations

import (
	"errors"
	"net/http"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	reservationsService "github.com/dev4ox/anti-cafe-reservation/internal/service/reservations"
)

const (
	msgInvalidQuery  = "некорректные параметры фильтра"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	reservations ReservationsService
	logger       Logger
}

func NewHandler(reservations ReservationsService, logger Logger) *Handler {
	return &Handler{
		reservations: reservations,
		logger:       logger,
	}
}

// Handle GET /api/v1/staff/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /staff/reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.reservations.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidStatus) {
			h.logger.Warn("GET /staff/reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /staff/reservations - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}
