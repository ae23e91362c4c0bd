package manage_settings

import (
	"errors"
	"net/http"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	settingsService "github.com/dev4ox/anti-cafe-reservation/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные данные настроек"
)

type Handler struct {
	settings SettingsService
	logger   Logger
}

func NewHandler(settings SettingsService, logger Logger) *Handler {
	return &Handler{
		settings: settings,
		logger:   logger,
	}
}

// HandleGet GET /api/v1/staff/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.GetOrInit(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(current))
}

// HandleUpdate PUT /api/v1/staff/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/settings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSettings)
		return
	}

	updated, err := h.settings.Update(r.Context(), in)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PUT /staff/settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PUT /staff/settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /staff/settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
