package manage_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
	calendarService "github.com/dev4ox/anti-cafe-reservation/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор особого дня"
	msgInvalidSchedule    = "некорректные данные расписания"
	msgEntryNotFound      = "запись расписания не найдена"
	msgDuplicateDay       = "особый день на эту дату уже существует"
)

type Handler struct {
	calendar CalendarService
	logger   Logger
}

func NewHandler(calendar CalendarService, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// HandleWeeklyList GET /api/v1/staff/schedule/weekly
func (h *Handler) HandleWeeklyList(w http.ResponseWriter, r *http.Request) {
	list, err := h.calendar.WeeklySchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/schedule/weekly - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainWeeklyList(list))
}

// HandleWeeklyUpsert PUT /api/v1/staff/schedule/weekly
func (h *Handler) HandleWeeklyUpsert(w http.ResponseWriter, r *http.Request) {
	var req WeeklyEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule/weekly - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.calendar.SetWeeklyEntry(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, calendarService.ErrInvalidInput) {
			h.logger.Warn("PUT /staff/schedule/weekly - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}
		h.logger.Error("PUT /staff/schedule/weekly - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /staff/schedule/weekly - Entry saved: day=%d", saved.DayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, FromDomainWeekly(saved))
}

// HandleSpecialList GET /api/v1/staff/schedule/special
func (h *Handler) HandleSpecialList(w http.ResponseWriter, r *http.Request) {
	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidSchedule)
			return
		}
		from = &parsed
	}

	list, err := h.calendar.UpcomingSpecialDays(r.Context(), from)
	if err != nil {
		h.logger.Error("GET /staff/schedule/special - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSpecialList(list))
}

// HandleSpecialCreate POST /api/v1/staff/schedule/special
func (h *Handler) HandleSpecialCreate(w http.ResponseWriter, r *http.Request) {
	var req SpecialDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/schedule/special - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	created, err := h.calendar.AddSpecialDay(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		case errors.Is(err, calendarService.ErrDuplicateSpecialDay):
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDay)
		default:
			h.logger.Error("POST /staff/schedule/special - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/schedule/special - Day created: id=%d, date=%s", created.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSpecial(created))
}

// HandleSpecialUpdate PUT /api/v1/staff/schedule/special/{id}
func (h *Handler) HandleSpecialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req SpecialDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule/special/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := req.ToDomain()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	updated, err := h.calendar.UpdateSpecialDay(r.Context(), id, day)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrEntryNotFound):
			handlers.RespondNotFound(w, msgEntryNotFound)
		case errors.Is(err, calendarService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		case errors.Is(err, calendarService.ErrDuplicateSpecialDay):
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDay)
		default:
			h.logger.Error("PUT /staff/schedule/special/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSpecial(updated))
}

// HandleSpecialDelete DELETE /api/v1/staff/schedule/special/{id}
func (h *Handler) HandleSpecialDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.calendar.RemoveSpecialDay(r.Context(), id); err != nil {
		if errors.Is(err, calendarService.ErrEntryNotFound) {
			handlers.RespondNotFound(w, msgEntryNotFound)
			return
		}
		h.logger.Error("DELETE /staff/schedule/special/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/schedule/special/{id} - Day deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
