package get_weekly_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jporcarn/dralia/internal/api/handlers"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
)

const (
	msgMissingYear        = "год обязателен"
	msgInvalidYear        = "некорректный год"
	msgMissingWeek        = "неделя обязательна"
	msgInvalidWeek        = "номер недели должен быть от 1 до 53"
	msgWeekNotFound       = "расписание для указанной недели не найдено"
	msgUpstreamTimeout    = "сервис доступности не ответил вовремя"
	msgUpstreamFailed     = "сервис доступности недоступен"
	msgUnexpectedUpstream = "ответ сервиса доступности не удалось обработать"
)

type Handler struct {
	useCase GetWeeklySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /slot
// Query params: year (required), week (required, 1-53)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /slot - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		h.logger.Warn("GET /slot - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем week из query параметров
	weekStr := r.URL.Query().Get("week")
	if weekStr == "" {
		h.logger.Warn("GET /slot - Missing week")
		handlers.RespondBadRequest(w, msgMissingWeek)
		return
	}

	week, err := strconv.Atoi(weekStr)
	if err != nil {
		h.logger.Warn("GET /slot - Invalid week: %q", weekStr)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getWeeklySlots.Request{
		Year: year,
		Week: week,
	})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getWeeklySlots.ErrInvalidInput):
			h.logger.Warn("GET /slot - Invalid input: year=%d, week=%d: %v", year, week, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		case errors.Is(err, getWeeklySlots.ErrWeekNotFound):
			h.logger.Warn("GET /slot - Week not found: year=%d, week=%d", year, week)
			handlers.RespondNotFound(w, msgWeekNotFound)

		case errors.Is(err, getWeeklySlots.ErrUpstreamTimeout):
			h.logger.Error("GET /slot - Upstream timeout: year=%d, week=%d: %v", year, week, err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgUpstreamTimeout)

		case errors.Is(err, getWeeklySlots.ErrUpstreamUnavailable):
			h.logger.Error("GET /slot - Upstream unavailable: year=%d, week=%d: %v", year, week, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		case errors.Is(err, getWeeklySlots.ErrDataShape):
			h.logger.Error("GET /slot - Bad upstream payload: year=%d, week=%d: %v", year, week, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnexpectedUpstream)

		default:
			h.logger.Error("GET /slot - Failed to get weekly slots: year=%d, week=%d, error=%v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slot - Weekly slots retrieved: year=%d, week=%d, facility=%s",
		year, week, result.Facility.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewWeeklySlotsResponse(result))
}
