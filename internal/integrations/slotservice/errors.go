package slotservice

import "errors"

var (
	// ErrWeekNotFound возвращается, когда у апстрима нет данных для запрошенного понедельника
	ErrWeekNotFound = errors.New("slotservice client: no availability for the given week")

	// ErrSlotAlreadyTaken возвращается, когда апстрим отклонил резервирование как конфликт
	ErrSlotAlreadyTaken = errors.New("slotservice client: slot already taken")

	// ErrUnauthorized возвращается при неверных учетных данных Basic auth
	ErrUnauthorized = errors.New("slotservice client: unauthorized")

	// ErrTimeout возвращается, когда вызов апстрима не уложился в таймаут
	ErrTimeout = errors.New("slotservice client: request timed out")

	// ErrUnavailable возвращается при транспортных ошибках и неожиданных статусах
	ErrUnavailable = errors.New("slotservice client: service unavailable")

	// ErrInvalidResponse возвращается, когда тело ответа не декодируется в ожидаемую структуру
	ErrInvalidResponse = errors.New("slotservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slotservice client: internal error")
)
