package list_booking_attempts

import (
	"context"

	"github.com/jporcarn/dralia/internal/domain"
)

// AttemptLister - журнал попыток бронирования, достаточный для выборки
// последних записей. Реализуется репозиторием bookinglog.
type AttemptLister interface {
	ListRecent(ctx context.Context, limit uint64) ([]*domain.BookingAttempt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
