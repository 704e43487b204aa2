package get_weekly_slots

// Request модель запроса недельного расписания.
// Неделя вне диапазона [1, 53] - ошибка вызывающей стороны, не системы.
type Request struct {
	Year int // Календарный год
	Week int // Номер недели по правилу "первого дня" (см. pkg/isoweek)
}

// Ответом служит доменная модель domain.WeeklySlots: плотная недельная
// сетка из пяти рабочих дней с выровненными пустыми слотами.
