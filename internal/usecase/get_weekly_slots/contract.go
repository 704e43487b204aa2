package get_weekly_slots

import (
	"context"
	"time"

	"github.com/jporcarn/dralia/internal/integrations/slotservice"
)

// SlotServiceClient интерфейс клиента внешнего API доступности
type SlotServiceClient interface {
	// GetWeeklyAvailability получает сырую доступность недели по дате её понедельника
	GetWeeklyAvailability(ctx context.Context, monday time.Time) (*slotservice.WeeklyAvailabilityDTO, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
