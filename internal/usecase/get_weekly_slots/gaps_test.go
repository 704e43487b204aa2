package get_weekly_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jporcarn/dralia/internal/domain"
)

// testWeek собирает неделю из двух открытых дней с разными окнами:
// понедельник 9-17, пятница 8-16, остальные дни закрыты.
func testWeek(t *testing.T) [domain.BusinessDaysPerWeek]domain.DailySlots {
	t.Helper()

	monday := time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC)

	var days [domain.BusinessDaysPerWeek]domain.DailySlots
	for i := range days {
		days[i] = domain.DailySlots{
			Date:      monday.AddDate(0, 0, i),
			DayOfWeek: domain.BusinessDayName(i),
		}
	}

	days[0].WorkPeriod = &domain.WorkPeriod{StartHour: 9, EndHour: 17}
	days[0].Slots = buildDaySlots(days[0].Date, days[0].WorkPeriod, nil, 10, time.UTC)

	days[4].WorkPeriod = &domain.WorkPeriod{StartHour: 8, EndHour: 16}
	days[4].Slots = buildDaySlots(days[4].Date, days[4].WorkPeriod, nil, 10, time.UTC)

	require.Len(t, days[0].Slots, 48)
	require.Len(t, days[4].Slots, 48)

	return days
}

func TestFillWeeklyGaps_AlignsOpenDaysToCommonWindow(t *testing.T) {
	days := testWeek(t)

	fillWeeklyGaps(&days, 10)

	// Общее окно недели: [08:00, 16:50] по времени начала слота.
	// Понедельник получает 6 синтетических слотов спереди,
	// пятница - 6 сзади.
	require.Len(t, days[0].Slots, 54)
	require.Len(t, days[4].Slots, 54)

	assert.True(t, days[0].Slots[0].Start.Equal(days[0].Date.Add(8*time.Hour)))
	assert.True(t, days[4].Slots[0].Start.Equal(days[4].Date.Add(8*time.Hour)))

	lastMon := days[0].Slots[len(days[0].Slots)-1]
	lastFri := days[4].Slots[len(days[4].Slots)-1]
	assert.True(t, lastMon.Start.Equal(days[0].Date.Add(16*time.Hour+50*time.Minute)))
	assert.True(t, lastFri.Start.Equal(days[4].Date.Add(16*time.Hour+50*time.Minute)))

	// Синтетические слоты пусты и не заняты
	for i := 0; i < 6; i++ {
		assert.True(t, days[0].Slots[i].Empty, "leading slot %d must be empty", i)
		assert.False(t, days[0].Slots[i].Busy)
	}
	for i := 48; i < 54; i++ {
		assert.True(t, days[4].Slots[i].Empty, "trailing slot %d must be empty", i)
		assert.False(t, days[4].Slots[i].Busy)
	}

	// Последний реальный слот пятницы не задублирован
	var at1550 int
	for _, slot := range days[4].Slots {
		if slot.Start.Equal(days[4].Date.Add(15*time.Hour + 50*time.Minute)) {
			at1550++
		}
	}
	assert.Equal(t, 1, at1550)
}

func TestFillWeeklyGaps_ClosedDaysStayClosed(t *testing.T) {
	days := testWeek(t)

	fillWeeklyGaps(&days, 10)

	for _, i := range []int{1, 2, 3} {
		assert.True(t, days[i].IsClosed(), "day %d must stay closed", i)
		assert.Empty(t, days[i].Slots)
	}
}

func TestFillWeeklyGaps_Idempotent(t *testing.T) {
	days := testWeek(t)

	fillWeeklyGaps(&days, 10)
	first := make([]int, len(days))
	for i := range days {
		first[i] = len(days[i].Slots)
	}

	// Повторное выравнивание уже выровненной недели ничего не добавляет
	fillWeeklyGaps(&days, 10)
	for i := range days {
		assert.Equal(t, first[i], len(days[i].Slots), "day %d", i)
	}
}

func TestFillWeeklyGaps_SortedByStart(t *testing.T) {
	days := testWeek(t)

	fillWeeklyGaps(&days, 10)

	for d := range days {
		for i := 1; i < len(days[d].Slots); i++ {
			assert.True(t, days[d].Slots[i-1].Start.Before(days[d].Slots[i].Start),
				"day %d slot %d out of order", d, i)
		}
	}
}

func TestFillWeeklyGaps_UniformWindowUnchanged(t *testing.T) {
	monday := time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC)

	var days [domain.BusinessDaysPerWeek]domain.DailySlots
	wp := &domain.WorkPeriod{StartHour: 9, EndHour: 12}
	for i := range days {
		date := monday.AddDate(0, 0, i)
		days[i] = domain.DailySlots{
			Date:       date,
			DayOfWeek:  domain.BusinessDayName(i),
			WorkPeriod: wp,
			Slots:      buildDaySlots(date, wp, nil, 30, time.UTC),
		}
	}

	fillWeeklyGaps(&days, 30)

	for i := range days {
		assert.Len(t, days[i].Slots, 6, "day %d", i)
	}
}

func TestFillWeeklyGaps_EmptyWeekNoPanic(t *testing.T) {
	var days [domain.BusinessDaysPerWeek]domain.DailySlots

	fillWeeklyGaps(&days, 10)
	fillWeeklyGaps(&days, 0)

	for i := range days {
		assert.Empty(t, days[i].Slots)
	}
}
