package create_reservation

import (
	"errors"
	"net/http"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	createReservation "github.com/dev4ox/anti-cafe-reservation/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgTableNotFound      = "стол не найден"
	msgNotEnoughCapacity  = "за этим столом недостаточно мест"
	msgInvalidDuration    = "недопустимая длительность бронирования"
	msgVenueClosed        = "заведение закрыто в выбранную дату"
	msgOutsideHours       = "выбранное время выходит за часы работы"
	msgTableBusy          = "стол уже занят на это время"
	msgTooLateToBook      = "слишком поздно для бронирования на это время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTableBusy):
			h.logger.Warn("POST /reservations - Table busy: table_id=%d, date=%s", req.TableID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgTableBusy)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrNotEnoughCapacity):
			h.logger.Warn("POST /reservations - Capacity exceeded: table_id=%d, seats=%d", req.TableID, req.Seats)
			handlers.RespondBadRequest(w, msgNotEnoughCapacity)

		case errors.Is(err, createReservation.ErrInvalidDuration):
			h.logger.Warn("POST /reservations - Invalid duration: %d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrVenueClosed):
			h.logger.Warn("POST /reservations - Venue closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, createReservation.ErrOutsideWorkingHours):
			h.logger.Warn("POST /reservations - Outside working hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: table_id=%d, error=%v", req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, code=%s", result.ID, result.PublicCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
