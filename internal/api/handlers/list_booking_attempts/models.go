package list_booking_attempts

import (
	"time"

	"github.com/jporcarn/dralia/internal/domain"
)

// BookingAttemptResponse HTTP модель одной записи журнала
type BookingAttemptResponse struct {
	ID           int64      `json:"id"`
	SlotStart    time.Time  `json:"slotStart"`
	SlotEnd      *time.Time `json:"slotEnd,omitempty"`
	FacilityID   *string    `json:"facilityId,omitempty"`
	PatientName  string     `json:"patientName"`
	PatientEmail string     `json:"patientEmail,omitempty"`
	Comments     string     `json:"comments,omitempty"`
	Outcome      string     `json:"outcome"`
	Detail       *string    `json:"detail,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ListBookingAttemptsResponse HTTP модель ответа
type ListBookingAttemptsResponse struct {
	Attempts []BookingAttemptResponse `json:"attempts"`
}

// NewListBookingAttemptsResponse конвертирует записи журнала в HTTP модель
func NewListBookingAttemptsResponse(attempts []*domain.BookingAttempt) *ListBookingAttemptsResponse {
	response := &ListBookingAttemptsResponse{
		Attempts: make([]BookingAttemptResponse, 0, len(attempts)),
	}

	for _, attempt := range attempts {
		response.Attempts = append(response.Attempts, BookingAttemptResponse{
			ID:           attempt.ID,
			SlotStart:    attempt.SlotStart,
			SlotEnd:      attempt.SlotEnd,
			FacilityID:   attempt.FacilityID,
			PatientName:  attempt.PatientName,
			PatientEmail: attempt.PatientEmail,
			Comments:     attempt.Comments,
			Outcome:      string(attempt.Outcome),
			Detail:       attempt.Detail,
			CreatedAt:    attempt.CreatedAt,
		})
	}

	return response
}
