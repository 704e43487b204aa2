package slotservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для записи метрик внешних вызовов.
// Может быть nil, если метрики выключены.
type MetricsObserver interface {
	ObserveIntegrationCall(target, operation, outcome string, duration time.Duration)
}
