package list_booking_attempts

import (
	"net/http"
	"strconv"

	"github.com/jporcarn/dralia/internal/api/handlers"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const msgInvalidLimit = "некорректный limit, ожидается целое число от 1 до 500"

type Handler struct {
	lister AttemptLister
	logger Logger
}

func NewHandler(lister AttemptLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /booking-attempts
// Query params: limit (optional, 1-500, default 50)
// Служебная выборка последних попыток бронирования для разбора инцидентов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultLimit)

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			h.logger.Warn("GET /booking-attempts - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	attempts, err := h.lister.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /booking-attempts - Failed to list booking attempts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking-attempts - Retrieved %d attempts (limit=%d)", len(attempts), limit)
	handlers.RespondJSON(w, http.StatusOK, NewListBookingAttemptsResponse(attempts))
}
