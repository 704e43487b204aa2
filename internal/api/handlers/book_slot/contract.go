package book_slot

import (
	"context"

	"github.com/jporcarn/dralia/internal/domain"
	bookSlot "github.com/jporcarn/dralia/internal/usecase/book_slot"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
)

type BookSlotUseCase interface {
	Execute(ctx context.Context, req *bookSlot.Request) (*bookSlot.Response, error)
}

// GetWeeklySlotsUseCase нужен, чтобы ответить на успешное бронирование
// свежепересчитанной сеткой недели
type GetWeeklySlotsUseCase interface {
	Execute(ctx context.Context, req *getWeeklySlots.Request) (*domain.WeeklySlots, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
