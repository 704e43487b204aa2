package handlers

import (
	"time"

	"github.com/jporcarn/dralia/internal/domain"
)

// WeeklySlotsResponse HTTP модель недельной сетки.
// Используется обеими операциями: получением расписания и бронированием
// (бронирование отвечает свежепересчитанной сеткой недели).
type WeeklySlotsResponse struct {
	Facility            FacilityResponse     `json:"facility"`
	SlotDurationMinutes int                  `json:"slotDurationMinutes"`
	Days                []DailySlotsResponse `json:"days"`
}

// FacilityResponse HTTP модель учреждения
type FacilityResponse struct {
	FacilityID string `json:"facilityId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
}

// DailySlotsResponse HTTP модель одного рабочего дня
type DailySlotsResponse struct {
	Date       string              `json:"date"`
	DayOfWeek  string              `json:"dayOfWeek"`
	WorkPeriod *WorkPeriodResponse `json:"workPeriod,omitempty"`
	Slots      []SlotResponse      `json:"slots"`
}

// WorkPeriodResponse HTTP модель рабочих часов дня
type WorkPeriodResponse struct {
	StartHour      int `json:"startHour"`
	EndHour        int `json:"endHour"`
	LunchStartHour int `json:"lunchStartHour"`
	LunchEndHour   int `json:"lunchEndHour"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Busy  bool      `json:"busy"`
	Empty bool      `json:"empty"`
}

// NewWeeklySlotsResponse конвертирует доменную сетку в HTTP модель
func NewWeeklySlotsResponse(week *domain.WeeklySlots) *WeeklySlotsResponse {
	days := make([]DailySlotsResponse, 0, len(week.Days))

	for d := range week.Days {
		day := &week.Days[d]

		slots := make([]SlotResponse, len(day.Slots))
		for i, slot := range day.Slots {
			slots[i] = SlotResponse{
				Start: slot.Start,
				End:   slot.End,
				Busy:  slot.Busy,
				Empty: slot.Empty,
			}
		}

		dayResponse := DailySlotsResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayOfWeek: day.DayOfWeek,
			Slots:     slots,
		}
		if day.WorkPeriod != nil {
			dayResponse.WorkPeriod = &WorkPeriodResponse{
				StartHour:      day.WorkPeriod.StartHour,
				EndHour:        day.WorkPeriod.EndHour,
				LunchStartHour: day.WorkPeriod.LunchStartHour,
				LunchEndHour:   day.WorkPeriod.LunchEndHour,
			}
		}

		days = append(days, dayResponse)
	}

	return &WeeklySlotsResponse{
		Facility: FacilityResponse{
			FacilityID: week.Facility.ID.String(),
			Name:       week.Facility.Name,
			Address:    week.Facility.Address,
		},
		SlotDurationMinutes: week.SlotDurationMinutes,
		Days:                days,
	}
}
