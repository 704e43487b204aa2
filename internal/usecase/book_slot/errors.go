package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotFound возвращается, когда ни один слот не начинается точно
	// в запрошенный момент (в том числе когда данных за неделю нет вовсе)
	ErrSlotNotFound = errors.New("no available slot found for the given start date")

	// ErrSlotAlreadyTaken возвращается, когда апстрим отклонил резервирование как конфликт
	ErrSlotAlreadyTaken = errors.New("slot already taken")

	// ErrUpstreamTimeout возвращается, когда вызов апстрима не уложился в таймаут
	ErrUpstreamTimeout = errors.New("reservation service timed out")

	// ErrUpstreamUnavailable возвращается при транспортных сбоях апстрима
	ErrUpstreamUnavailable = errors.New("reservation service unavailable")

	// ErrDataShape возвращается, когда ответ апстрима не соответствует ожидаемой структуре
	ErrDataShape = errors.New("availability payload has unexpected shape")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
