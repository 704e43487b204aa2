package book_slot

import (
	"time"

	"github.com/google/uuid"

	"github.com/jporcarn/dralia/internal/domain"
)

// Request модель запроса бронирования слота
type Request struct {
	Start    time.Time      // Желаемый момент начала слота (UTC)
	Comments string         // Произвольный комментарий для учреждения
	Patient  domain.Patient // Данные пациента, передаются апстриму как есть
}

// Response модель успешно выполненного бронирования
type Response struct {
	FacilityID uuid.UUID // Учреждение, в котором забронирован слот
	Start      time.Time // Начало забронированного слота
	End        time.Time // Конец слота: Start + длительность слота недели
	Year       int       // Ключ недели слота - для пересчета сетки в ответе
	Week       int
}
