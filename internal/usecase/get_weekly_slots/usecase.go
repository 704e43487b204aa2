package get_weekly_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jporcarn/dralia/internal/domain"
	slotClient "github.com/jporcarn/dralia/internal/integrations/slotservice"
	"github.com/jporcarn/dralia/pkg/isoweek"
)

// UseCase use case получения недельного расписания слотов.
// Каждый запрос пересчитывает сетку с нуля из ответа апстрима:
// состояния между запросами нет и кэша нет.
type UseCase struct {
	client      SlotServiceClient
	facilityLoc *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// facilityLoc - явно сконфигурированный часовой пояс учреждения.
func NewUseCase(client SlotServiceClient, facilityLoc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:      client,
		facilityLoc: facilityLoc,
		logger:      logger,
	}
}

// Execute выполняет use case получения недельного расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.WeeklySlots, error) {
	uc.logger.Info("GetWeeklySlots: year=%d, week=%d", req.Year, req.Week)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeeklySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем ключ недели - дату её понедельника
	monday := isoweek.MondayOf(req.Year, req.Week)

	// 3. Получаем сырую доступность недели у апстрима
	week, err := uc.fetchWeek(ctx, monday)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetWeeklySlots: built grid for monday=%s, facility=%s",
		monday.Format(domain.DateFormat), week.Facility.ID)

	return week, nil
}

// WeeklySlotsByMonday пересчитывает сетку недели по дате её понедельника.
// Используется операцией бронирования, чтобы искать слот в свежей сетке,
// а не в присланной клиентом.
func (uc *UseCase) WeeklySlotsByMonday(ctx context.Context, monday time.Time) (*domain.WeeklySlots, error) {
	return uc.fetchWeek(ctx, monday)
}

func (uc *UseCase) fetchWeek(ctx context.Context, monday time.Time) (*domain.WeeklySlots, error) {
	dto, err := uc.client.GetWeeklyAvailability(ctx, monday)
	if err != nil {
		return nil, uc.mapClientError(monday, err)
	}

	// Апстрим может ответить 200 с пустым телом - для недели данных нет
	if dto.IsEmpty() {
		uc.logger.Warn("GetWeeklySlots: upstream returned empty payload for monday=%s",
			monday.Format(domain.DateFormat))
		return nil, ErrWeekNotFound
	}

	week := &domain.WeeklySlots{
		SlotDurationMinutes: dto.SlotDurationMinutes,
	}

	if dto.Facility != nil {
		week.Facility = domain.Facility{
			ID:      dto.Facility.FacilityID,
			Name:    dto.Facility.Name,
			Address: dto.Facility.Address,
		}
	}

	// 4. Строим сетку каждого рабочего дня: дни идут фиксированным
	// массивом 0-4 от понедельника, имя дня выводится из смещения.
	for i, dayDTO := range dto.BusinessDays() {
		date := monday.AddDate(0, 0, i)

		day := domain.DailySlots{
			Date:      date,
			DayOfWeek: domain.BusinessDayName(i),
		}

		if dayDTO != nil && dayDTO.WorkPeriod != nil {
			day.WorkPeriod = &domain.WorkPeriod{
				StartHour:      dayDTO.WorkPeriod.StartHour,
				EndHour:        dayDTO.WorkPeriod.EndHour,
				LunchStartHour: dayDTO.WorkPeriod.LunchStartHour,
				LunchEndHour:   dayDTO.WorkPeriod.LunchEndHour,
			}
			day.Slots = buildDaySlots(date, day.WorkPeriod, busyIntervals(dayDTO), dto.SlotDurationMinutes, uc.facilityLoc)
		}

		week.Days[i] = day
	}

	// 5. Выравниваем открытые дни недели к общему окну
	fillWeeklyGaps(&week.Days, dto.SlotDurationMinutes)

	return week, nil
}

func busyIntervals(day *slotClient.DailyAvailabilityDTO) []domain.BusyInterval {
	if len(day.BusySlots) == 0 {
		return nil
	}
	intervals := make([]domain.BusyInterval, len(day.BusySlots))
	for i, busy := range day.BusySlots {
		intervals[i] = domain.BusyInterval{
			Start: busy.Start.UTC(),
			End:   busy.End.UTC(),
		}
	}
	return intervals
}

// mapClientError переводит ошибки клиента в ошибки usecase
func (uc *UseCase) mapClientError(monday time.Time, err error) error {
	mondayStr := monday.Format(domain.DateFormat)

	switch {
	case errors.Is(err, slotClient.ErrWeekNotFound):
		uc.logger.Warn("GetWeeklySlots: no availability for monday=%s", mondayStr)
		return ErrWeekNotFound
	case errors.Is(err, slotClient.ErrTimeout):
		uc.logger.Error("GetWeeklySlots: upstream timed out for monday=%s: %v", mondayStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	case errors.Is(err, slotClient.ErrInvalidResponse):
		uc.logger.Error("GetWeeklySlots: bad upstream payload for monday=%s: %v", mondayStr, err)
		return fmt.Errorf("%w: %v", ErrDataShape, err)
	case errors.Is(err, slotClient.ErrUnavailable), errors.Is(err, slotClient.ErrUnauthorized):
		uc.logger.Error("GetWeeklySlots: upstream unavailable for monday=%s: %v", mondayStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("GetWeeklySlots: failed to fetch availability for monday=%s: %v", mondayStr, err)
		return fmt.Errorf("%w: failed to fetch availability: %v", ErrInternal, err)
	}
}
