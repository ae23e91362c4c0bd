package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	inboxService "github.com/dev4ox/anti-cafe-reservation/internal/service/inbox"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор сообщения"
	msgInvalidMessage     = "укажите имя, телефон и текст сообщения"
	msgInvalidStatus      = "недопустимый статус сообщения"
	msgMessageNotFound    = "сообщение не найдено"
)

type Handler struct {
	inbox  InboxService
	logger Logger
}

func NewHandler(inbox InboxService, logger Logger) *Handler {
	return &Handler{
		inbox:  inbox,
		logger: logger,
	}
}

// HandleSubmit POST /api/v1/contact
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.inbox.Submit(r.Context(), req.Name, req.Phone, req.Message)
	if err != nil {
		if errors.Is(err, inboxService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidMessage)
			return
		}
		h.logger.Error("POST /contact - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message received: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleList GET /api/v1/staff/inbox
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var status *domain.MessageStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := domain.MessageStatus(raw)
		if !parsed.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	list, err := h.inbox.List(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /staff/inbox - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleUpdateStatus PATCH /api/v1/staff/inbox/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/inbox/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.inbox.UpdateStatus(r.Context(), id, domain.MessageStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, inboxService.ErrMessageNotFound):
			handlers.RespondNotFound(w, msgMessageNotFound)
		case errors.Is(err, inboxService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PATCH /staff/inbox/{id}/status - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff/inbox/{id}/status - Status updated: id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
