package health

import (
	"context"
	"time"

	"github.com/jporcarn/dralia/internal/integrations/slotservice"
)

// AvailabilityProber - клиент сервиса доступности, достаточный для health-проверки.
type AvailabilityProber interface {
	GetWeeklyAvailability(ctx context.Context, monday time.Time) (*slotservice.WeeklyAvailabilityDTO, error)
}

type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
