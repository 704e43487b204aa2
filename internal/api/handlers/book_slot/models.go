package book_slot

import (
	"time"

	"github.com/jporcarn/dralia/internal/domain"
	bookSlot "github.com/jporcarn/dralia/internal/usecase/book_slot"
)

// BookSlotRequest HTTP модель запроса бронирования
type BookSlotRequest struct {
	Start    time.Time      `json:"start"`
	Comments string         `json:"comments"`
	Patient  PatientRequest `json:"patient"`
}

// PatientRequest HTTP модель пациента
type PatientRequest struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		Start:    r.Start,
		Comments: r.Comments,
		Patient: domain.Patient{
			Name:       r.Patient.Name,
			SecondName: r.Patient.SecondName,
			Email:      r.Patient.Email,
			Phone:      r.Patient.Phone,
		},
	}
}
