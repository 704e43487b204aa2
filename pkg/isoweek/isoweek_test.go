package isoweek

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Регрессионная таблица правила нумерации недель. Обе операции (получение
// расписания и бронирование) обязаны давать один и тот же понедельник для
// одной и той же пары (год, неделя).
var mondayTable = []struct {
	year   int
	week   int
	monday string
}{
	{2024, 1, "2024-01-01"},
	{2024, 2, "2024-01-08"},
	{2024, 39, "2024-09-23"},
	{2024, 52, "2024-12-23"},
	{2025, 1, "2024-12-30"},
	{2025, 2, "2025-01-06"},
	{2025, 17, "2025-04-21"},
	{2025, 52, "2025-12-22"},
	{2026, 1, "2025-12-29"},
	{2026, 2, "2026-01-05"},
	{2026, 29, "2026-07-13"},
	{2026, 52, "2026-12-21"},
	{2026, 53, "2026-12-28"},
}

func TestMondayOf(t *testing.T) {
	for _, tc := range mondayTable {
		got := MondayOf(tc.year, tc.week)

		want, err := time.Parse("2006-01-02", tc.monday)
		require.NoError(t, err)

		assert.True(t, got.Equal(want), "MondayOf(%d, %d) = %s, want %s",
			tc.year, tc.week, got.Format("2006-01-02"), tc.monday)
		assert.Equal(t, time.Monday, got.Weekday())
	}
}

func TestWeekOf_InverseOfMondayOf(t *testing.T) {
	// Для каждого понедельника таблицы WeekOf обязан вернуть ключ недели,
	// который через MondayOf разрешается в тот же самый понедельник.
	for _, tc := range mondayTable {
		monday := MondayOf(tc.year, tc.week)

		year, week := WeekOf(monday)
		assert.True(t, MondayOf(year, week).Equal(monday),
			"WeekOf(%s) = (%d, %d) does not resolve back", tc.monday, year, week)
	}
}

func TestWeekOf_AllDaysOfWeekShareKey(t *testing.T) {
	// Любой день недели (и любое время суток) указывает на тот же понедельник.
	monday := MondayOf(2025, 17) // 2025-04-21

	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset).Add(13*time.Hour + 40*time.Minute)

		year, week := WeekOf(day)
		assert.True(t, MondayOf(year, week).Equal(monday),
			"day %s resolved to (%d, %d)", day.Format(time.RFC3339), year, week)
	}
}

func TestWeekOf_YearRollover(t *testing.T) {
	// 2024-12-30 относится и к 53-й неделе 2024, и к 1-й неделе 2025 —
	// оба ключа разрешаются в один понедельник.
	day := time.Date(2024, time.December, 30, 10, 0, 0, 0, time.UTC)

	year, week := WeekOf(day)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 53, week)
	assert.True(t, MondayOf(year, week).Equal(MondayOf(2025, 1)))
}

func TestWeekOf_EarlyJanuaryFallsBackToPreviousYear(t *testing.T) {
	// 2012-01-01 — воскресенье, его неделя началась в декабре 2011.
	day := time.Date(2012, time.January, 1, 9, 0, 0, 0, time.UTC)

	year, week := WeekOf(day)
	assert.Equal(t, 2011, year)
	assert.True(t, MondayOf(year, week).Equal(MondayOfDate(day)))
}

func TestMondayOfDate(t *testing.T) {
	friday := time.Date(2025, time.January, 3, 16, 50, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), MondayOfDate(friday))

	monday := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, MondayOfDate(monday))
}

func TestWeekOf_EveryMondayOfYearRoundTrips(t *testing.T) {
	// Свойство обратимости на всём диапазоне: каждый понедельник 2024-2026
	// восстанавливается из своего ключа недели.
	start := MondayOf(2024, 1)
	for monday := start; monday.Year() < 2027; monday = monday.AddDate(0, 0, DaysPerWeek) {
		year, week := WeekOf(monday)
		require.True(t, MondayOf(year, week).Equal(monday),
			"monday %s -> (%d, %d)", monday.Format("2006-01-02"), year, week)
	}
}
