package slotservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/jporcarn/dralia/internal/domain"
)

// FacilityDTO учреждение из ответа slot service
type FacilityDTO struct {
	FacilityID uuid.UUID `json:"FacilityId"`
	Name       string    `json:"Name"`
	Address    string    `json:"Address"`
}

// WorkPeriodDTO рабочие часы одного дня в локальном гражданском времени учреждения
type WorkPeriodDTO struct {
	StartHour      int `json:"StartHour"`
	EndHour        int `json:"EndHour"`
	LunchStartHour int `json:"LunchStartHour"`
	LunchEndHour   int `json:"LunchEndHour"`
}

// BusySlotDTO занятый интервал; абсолютные моменты времени
type BusySlotDTO struct {
	Start time.Time `json:"Start"`
	End   time.Time `json:"End"`
}

// DailyAvailabilityDTO доступность одного дня.
// Отсутствие WorkPeriod означает, что учреждение в этот день закрыто.
type DailyAvailabilityDTO struct {
	WorkPeriod *WorkPeriodDTO `json:"WorkPeriod"`
	BusySlots  []BusySlotDTO  `json:"BusySlots"`
}

// WeeklyAvailabilityDTO ответ GetWeeklyAvailability/{yyyyMMdd}.
// Апстрим описывает только рабочие дни; выходных в ответе не бывает.
type WeeklyAvailabilityDTO struct {
	Facility            *FacilityDTO          `json:"Facility"`
	SlotDurationMinutes int                   `json:"SlotDurationMinutes"`
	Monday              *DailyAvailabilityDTO `json:"Monday"`
	Tuesday             *DailyAvailabilityDTO `json:"Tuesday"`
	Wednesday           *DailyAvailabilityDTO `json:"Wednesday"`
	Thursday            *DailyAvailabilityDTO `json:"Thursday"`
	Friday              *DailyAvailabilityDTO `json:"Friday"`
}

// BusinessDays возвращает дни недели фиксированным массивом с индексом
// 0-4 от понедельника, чтобы обе операции обходили дни в одном порядке
// без диспетчеризации по именам.
func (w *WeeklyAvailabilityDTO) BusinessDays() [domain.BusinessDaysPerWeek]*DailyAvailabilityDTO {
	return [domain.BusinessDaysPerWeek]*DailyAvailabilityDTO{
		w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday,
	}
}

// IsEmpty сообщает, что апстрим не вернул ни одного дня и ни учреждения -
// для такой недели данных нет вовсе.
func (w *WeeklyAvailabilityDTO) IsEmpty() bool {
	if w.Facility != nil {
		return false
	}
	for _, day := range w.BusinessDays() {
		if day != nil {
			return false
		}
	}
	return true
}

// PatientDTO пациент в команде резервирования
type PatientDTO struct {
	Name       string `json:"Name"`
	SecondName string `json:"SecondName"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
}

// TakeSlotDTO тело запроса POST TakeSlot
type TakeSlotDTO struct {
	FacilityID uuid.UUID  `json:"FacilityId"`
	Start      time.Time  `json:"Start"`
	End        time.Time  `json:"End"`
	Comments   string     `json:"Comments"`
	Patient    PatientDTO `json:"Patient"`
}
