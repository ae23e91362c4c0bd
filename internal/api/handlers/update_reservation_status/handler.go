package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	reservationsService "github.com/dev4ox/anti-cafe-reservation/internal/service/reservations"
)

const (
	msgInvalidID           = "некорректный идентификатор бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "некорректный статус бронирования"
	msgReservationNotFound = "бронирование не найдено"
	msgTableBusy           = "стол занят в это время, вернуть бронь нельзя"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/staff/reservations/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /staff/reservations/{id}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/reservations/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	res, err := h.reservations.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /staff/reservations/{id}/status - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /staff/reservations/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrTableBusy):
			h.logger.Warn("PATCH /staff/reservations/{id}/status - Table busy: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgTableBusy)

		default:
			h.logger.Error("PATCH /staff/reservations/{id}/status - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff/reservations/{id}/status - Updated: id=%d, status=%s", id, res.Status)
	handlers.RespondJSON(w, http.StatusOK, &UpdateStatusResponse{ID: res.ID, Status: string(res.Status)})
}
