package get_availability

import (
	"errors"
	"net/http"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	getAvailability "github.com/dev4ox/anti-cafe-reservation/internal/usecase/get_availability"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса, ожидаются date (YYYY-MM-DD), duration, seats"
	msgTableNotFound = "стол не найден"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTableNotFound):
			h.logger.Warn("GET /availability - Table not found: table_id=%v", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
