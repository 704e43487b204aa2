package book_slot

import (
	"context"
	"time"

	"github.com/jporcarn/dralia/internal/domain"
	"github.com/jporcarn/dralia/internal/integrations/slotservice"
)

// WeeklySlotsProvider пересчитывает недельную сетку по дате понедельника.
// Бронирование никогда не доверяет присланной клиентом (возможно устаревшей)
// сетке - слот ищется только в свежепересчитанной.
type WeeklySlotsProvider interface {
	WeeklySlotsByMonday(ctx context.Context, monday time.Time) (*domain.WeeklySlots, error)
}

// ReservationClient интерфейс внешней операции резервирования
type ReservationClient interface {
	TakeSlot(ctx context.Context, takeSlot *slotservice.TakeSlotDTO) error
}

// AttemptRecorder интерфейс журнала попыток бронирования
type AttemptRecorder interface {
	Record(ctx context.Context, attempt *domain.BookingAttempt) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoopRecorder заглушка журнала для конфигураций без auditlog
type NoopRecorder struct{}

// Record ничего не делает
func (NoopRecorder) Record(ctx context.Context, attempt *domain.BookingAttempt) error {
	return nil
}
