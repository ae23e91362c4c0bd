package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	catalogService "github.com/dev4ox/anti-cafe-reservation/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор"
	msgInvalidItemData    = "некорректные данные позиции каталога"
	msgItemNotFound       = "позиция каталога не найдена"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// HandlePublicGames GET /api/v1/catalog/games
func (h *Handler) HandlePublicGames(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListGames(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /catalog/games - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainGames(list))
}

// HandlePublicProducts GET /api/v1/catalog/products
func (h *Handler) HandlePublicProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListProducts(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /catalog/products - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainProducts(list))
}

// HandleGamesList GET /api/v1/staff/games
func (h *Handler) HandleGamesList(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListGames(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /staff/games - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainGames(list))
}

// HandleGameCreate POST /api/v1/staff/games
func (h *Handler) HandleGameCreate(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/games - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.catalog.CreateGame(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidItemData)
			return
		}
		h.logger.Error("POST /staff/games - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff/games - Game created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainGame(created))
}

// HandleGameUpdate PUT /api/v1/staff/games/{id}
func (h *Handler) HandleGameUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req GameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/games/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.catalog.UpdateGame(r.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidItemData)
		default:
			h.logger.Error("PUT /staff/games/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainGame(updated))
}

// HandleGameDelete DELETE /api/v1/staff/games/{id}
func (h *Handler) HandleGameDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.catalog.DeleteGame(r.Context(), id); err != nil {
		if errors.Is(err, catalogService.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /staff/games/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/games/{id} - Game deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleProductsList GET /api/v1/staff/products
func (h *Handler) HandleProductsList(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListProducts(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /staff/products - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainProducts(list))
}

// HandleProductCreate POST /api/v1/staff/products
func (h *Handler) HandleProductCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/products - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidItemData)
		return
	}

	created, err := h.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidItemData)
			return
		}
		h.logger.Error("POST /staff/products - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff/products - Product created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainProduct(created))
}

// HandleProductUpdate PUT /api/v1/staff/products/{id}
func (h *Handler) HandleProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/products/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidItemData)
		return
	}

	updated, err := h.catalog.UpdateProduct(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidItemData)
		default:
			h.logger.Error("PUT /staff/products/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainProduct(updated))
}

// HandleProductDelete DELETE /api/v1/staff/products/{id}
func (h *Handler) HandleProductDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, catalogService.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgItemNotFound)
			return
		}
		h.logger.Error("DELETE /staff/products/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/products/{id} - Product deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
