package get_weekly_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrWeekNotFound возвращается, когда у апстрима нет данных для запрошенной недели
	ErrWeekNotFound = errors.New("no slots found for the given year and week")

	// ErrUpstreamTimeout возвращается, когда вызов апстрима не уложился в таймаут
	ErrUpstreamTimeout = errors.New("availability service timed out")

	// ErrUpstreamUnavailable возвращается при транспортных сбоях апстрима
	ErrUpstreamUnavailable = errors.New("availability service unavailable")

	// ErrDataShape возвращается, когда ответ апстрима не соответствует ожидаемой структуре
	ErrDataShape = errors.New("availability payload has unexpected shape")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
