package book_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jporcarn/dralia/internal/api/handlers"
	bookSlot "github.com/jporcarn/dralia/internal/usecase/book_slot"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
)

const (
	msgInvalidStartDate   = "некорректная дата начала, ожидается ISO 8601 в UTC"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStartMismatch      = "дата начала в URL не совпадает с датой начала в теле запроса"
	msgInvalidBooking     = "некорректные данные бронирования"
	msgSlotNotFound       = "слот с указанным началом не найден"
	msgSlotTaken          = "слот уже занят"
	msgUpstreamTimeout    = "сервис резервирования не ответил вовремя"
	msgUpstreamFailed     = "сервис резервирования недоступен"
	msgUnexpectedUpstream = "ответ сервиса доступности не удалось обработать"
)

type Handler struct {
	useCase            BookSlotUseCase
	weeklySlotsUseCase GetWeeklySlotsUseCase
	logger             Logger
}

func NewHandler(useCase BookSlotUseCase, weeklySlotsUseCase GetWeeklySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		weeklySlotsUseCase: weeklySlotsUseCase,
		logger:             logger,
	}
}

// Handle PUT /slot/{startDate}/book
// startDate - ISO 8601 момент начала слота; обязан совпадать с полем start тела.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем startDate из URL
	startDate, err := time.Parse(time.RFC3339, vars["startDate"])
	if err != nil {
		h.logger.Warn("PUT /slot/{startDate}/book - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slot/{startDate}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Дата в пути и дата в теле обязаны совпадать - это один и тот же слот
	if !startDate.Equal(req.Start) {
		h.logger.Warn("PUT /slot/{startDate}/book - Start mismatch: path=%s, body=%s",
			startDate.Format(time.RFC3339), req.Start.Format(time.RFC3339))
		handlers.RespondBadRequest(w, msgStartMismatch)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("PUT /slot/{startDate}/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /slot/{startDate}/book - Slot not found: start=%s",
				startDate.Format(time.RFC3339))
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotAlreadyTaken):
			h.logger.Warn("PUT /slot/{startDate}/book - Slot already taken: start=%s",
				startDate.Format(time.RFC3339))
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookSlot.ErrUpstreamTimeout):
			h.logger.Error("PUT /slot/{startDate}/book - Upstream timeout: start=%s: %v",
				startDate.Format(time.RFC3339), err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgUpstreamTimeout)

		case errors.Is(err, bookSlot.ErrUpstreamUnavailable):
			h.logger.Error("PUT /slot/{startDate}/book - Upstream unavailable: start=%s: %v",
				startDate.Format(time.RFC3339), err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailed)

		case errors.Is(err, bookSlot.ErrDataShape):
			h.logger.Error("PUT /slot/{startDate}/book - Bad upstream payload: start=%s: %v",
				startDate.Format(time.RFC3339), err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnexpectedUpstream)

		default:
			h.logger.Error("PUT /slot/{startDate}/book - Failed to book slot: start=%s, error=%v",
				startDate.Format(time.RFC3339), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slot/{startDate}/book - Slot booked: start=%s, end=%s, facility=%s",
		result.Start.Format(time.RFC3339), result.End.Format(time.RFC3339), result.FacilityID)

	// Отвечаем свежепересчитанной сеткой недели забронированного слота
	week, err := h.weeklySlotsUseCase.Execute(r.Context(), &getWeeklySlots.Request{
		Year: result.Year,
		Week: result.Week,
	})
	if err != nil {
		// Бронирование уже состоялось; потеря сетки в ответе - не повод отдавать ошибку клиенту
		h.logger.Error("PUT /slot/{startDate}/book - Failed to refresh grid after booking: %v", err)
		handlers.RespondJSON(w, http.StatusCreated, nil)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.NewWeeklySlotsResponse(week))
}
