package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jporcarn/dralia/internal/api/handlers"
	"github.com/jporcarn/dralia/internal/integrations/slotservice"
	"github.com/jporcarn/dralia/pkg/isoweek"
)

const probeTimeout = 5 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

type Handler struct {
	prober AvailabilityProber
	logger Logger
}

func NewHandler(prober AvailabilityProber, logger Logger) *Handler {
	return &Handler{
		prober: prober,
		logger: logger,
	}
}

// Handle GET /health
// Пробуем запросить доступность текущей недели: сервис жив, если upstream отвечает.
// 404 по текущей неделе - тоже здоровый ответ, upstream на связи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	monday := isoweek.MondayOfDate(time.Now().UTC())

	_, err := h.prober.GetWeeklyAvailability(ctx, monday)
	if err != nil && !errors.Is(err, slotservice.ErrWeekNotFound) {
		h.logger.Warn("GET /health - Upstream probe failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Upstream: "unreachable",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Upstream: "ok",
	})
}
