package manage_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	tablesService "github.com/dev4ox/anti-cafe-reservation/internal/service/tables"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор стола"
	msgInvalidTableData   = "некорректные данные стола"
	msgTableNotFound      = "стол не найден"
	msgTableInUse         = "у стола есть бронирования, деактивируйте его вместо удаления"
)

type Handler struct {
	tables TablesService
	logger Logger
}

func NewHandler(tables TablesService, logger Logger) *Handler {
	return &Handler{
		tables: tables,
		logger: logger,
	}
}

// HandleList GET /api/v1/staff/tables
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	list, err := h.tables.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /staff/tables - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// HandleCreate POST /api/v1/staff/tables
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/tables - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.tables.Create(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, tablesService.ErrInvalidInput) {
			h.logger.Warn("POST /staff/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableData)
			return
		}
		h.logger.Error("POST /staff/tables - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff/tables - Table created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/staff/tables/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req TableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/tables/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.tables.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, tablesService.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)
		case errors.Is(err, tablesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTableData)
		default:
			h.logger.Error("PUT /staff/tables/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleDelete DELETE /api/v1/staff/tables/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.tables.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tablesService.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)
		case errors.Is(err, tablesService.ErrTableInUse):
			handlers.RespondError(w, http.StatusConflict, msgTableInUse)
		default:
			h.logger.Error("DELETE /staff/tables/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/tables/{id} - Table deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
