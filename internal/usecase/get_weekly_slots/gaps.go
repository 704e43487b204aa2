package get_weekly_slots

import (
	"sort"
	"time"

	"github.com/jporcarn/dralia/internal/domain"
)

// fillWeeklyGaps выравнивает открытые дни недели к общему временному окну.
//
// Сначала по всем дням с хотя бы одним слотом вычисляются минимальное и
// максимальное время суток начала слота. Затем каждому открытому дню
// добавляются синтетические пустые слоты: спереди до общего минимума и
// сзади после общего максимума, с шагом в одну длительность слота.
// Хвостовой ряд начинается ровно через одну длительность после последнего
// слота дня - последний реальный слот не дублируется.
//
// Закрытые дни (без слотов) не выравниваются вовсе: закрытый день должен
// оставаться отличимым от дня с более узким рабочим окном.
func fillWeeklyGaps(days *[domain.BusinessDaysPerWeek]domain.DailySlots, slotDurationMinutes int) {
	if slotDurationMinutes <= 0 {
		return
	}
	slotDuration := time.Duration(slotDurationMinutes) * time.Minute

	weekMin, weekMax, any := weeklyTimeOfDayBounds(days)
	if !any {
		return
	}

	for d := range days {
		day := &days[d]
		if !day.HasSlots() {
			continue
		}

		first := day.Slots[0].Start
		last := day.Slots[0].Start
		for _, slot := range day.Slots {
			if slot.Start.Before(first) {
				first = slot.Start
			}
			if slot.Start.After(last) {
				last = slot.Start
			}
		}

		// Сверху вниз: [weekMin, dayMin)
		leading := int((timeOfDay(first) - weekMin) / slotDuration)
		for i := 1; i <= leading; i++ {
			start := first.Add(-time.Duration(i) * slotDuration)
			day.Slots = append(day.Slots, domain.Slot{
				Start: start,
				End:   start.Add(slotDuration),
				Empty: true,
			})
		}

		// Снизу вверх: (dayMax, weekMax]
		trailing := int((weekMax - timeOfDay(last)) / slotDuration)
		for i := 1; i <= trailing; i++ {
			start := last.Add(time.Duration(i) * slotDuration)
			day.Slots = append(day.Slots, domain.Slot{
				Start: start,
				End:   start.Add(slotDuration),
				Empty: true,
			})
		}

		sort.Slice(day.Slots, func(i, j int) bool {
			if !day.Slots[i].Start.Equal(day.Slots[j].Start) {
				return day.Slots[i].Start.Before(day.Slots[j].Start)
			}
			return day.Slots[i].End.Before(day.Slots[j].End)
		})
	}
}

// weeklyTimeOfDayBounds возвращает минимальное и максимальное время суток
// начала слота по всем открытым дням недели
func weeklyTimeOfDayBounds(days *[domain.BusinessDaysPerWeek]domain.DailySlots) (weekMin, weekMax time.Duration, any bool) {
	for d := range days {
		for _, slot := range days[d].Slots {
			tod := timeOfDay(slot.Start)
			if !any {
				weekMin, weekMax = tod, tod
				any = true
				continue
			}
			if tod < weekMin {
				weekMin = tod
			}
			if tod > weekMax {
				weekMax = tod
			}
		}
	}
	return weekMin, weekMax, any
}

// timeOfDay возвращает смещение момента от полуночи его UTC-суток
func timeOfDay(t time.Time) time.Duration {
	u := t.UTC()
	return time.Duration(u.Hour())*time.Hour +
		time.Duration(u.Minute())*time.Minute +
		time.Duration(u.Second())*time.Second
}
