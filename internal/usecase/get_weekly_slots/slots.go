package get_weekly_slots

import (
	"time"

	"github.com/jporcarn/dralia/internal/domain"
)

// buildDaySlots разворачивает рабочие часы одного дня в последовательность
// слотов фиксированной длительности, нормализованных к UTC.
//
// Гражданские часы (start/end/lunch) интерпретируются на дату date в явно
// заданном часовом поясе учреждения loc - никогда в локали хоста. Слоты
// обеденного перерыва помечаются Empty и не участвуют в разметке занятости,
// поэтому Busy и Empty взаимоисключающие по построению.
//
// Некорректные границы рабочего дня не валидируются: вырожденный диапазон
// просто дает ноль слотов.
func buildDaySlots(
	date time.Time,
	workPeriod *domain.WorkPeriod,
	busyIntervals []domain.BusyInterval,
	slotDurationMinutes int,
	loc *time.Location,
) []domain.Slot {
	if workPeriod == nil || slotDurationMinutes <= 0 {
		// Закрытый день: пустой список, без выравнивания
		return nil
	}

	startTime := civilHourUTC(date, workPeriod.StartHour, loc)
	endTime := civilHourUTC(date, workPeriod.EndHour, loc)
	lunchStart := civilHourUTC(date, workPeriod.LunchStartHour, loc)
	lunchEnd := civilHourUTC(date, workPeriod.LunchEndHour, loc)

	slotDuration := time.Duration(slotDurationMinutes) * time.Minute

	var slots []domain.Slot
	for current := startTime; current.Before(endTime); current = current.Add(slotDuration) {
		slotEnd := current.Add(slotDuration)

		slot := domain.Slot{
			Start: current,
			End:   slotEnd,
		}

		// Обед помечается СНАЧАЛА: слот целиком внутри [lunchStart, lunchEnd)
		// становится пустой заглушкой, занятость для него не проверяется.
		if !current.Before(lunchStart) && !slotEnd.After(lunchEnd) {
			slot.Empty = true
			slots = append(slots, slot)
			continue
		}

		// Полуинтервальное пересечение ловит и частичные перекрытия,
		// а не только выровненные по сетке брони.
		for _, busy := range busyIntervals {
			if current.Before(busy.End) && slotEnd.After(busy.Start) {
				slot.Busy = true
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

// civilHourUTC строит момент "час hour дня date в поясе loc" и переводит его в UTC
func civilHourUTC(date time.Time, hour int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, loc).UTC()
}
