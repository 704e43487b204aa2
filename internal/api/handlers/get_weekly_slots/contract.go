package get_weekly_slots

import (
	"context"

	"github.com/jporcarn/dralia/internal/domain"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
)

type GetWeeklySlotsUseCase interface {
	Execute(ctx context.Context, req *getWeeklySlots.Request) (*domain.WeeklySlots, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
