package domain

import "time"

// Patient carries the identity fields forwarded to the reservation
// endpoint. The service does not store or interpret them.
type Patient struct {
	Name       string
	SecondName string
	Email      string
	Phone      string
}

// BookSlot is a booking request: the desired slot start instant plus the
// patient details and a free-text comment. It lives for the duration of
// one request.
type BookSlot struct {
	Start    time.Time
	Comments string
	Patient  Patient
}

// AttemptOutcome classifies how a booking attempt ended.
type AttemptOutcome string

const (
	OutcomeConfirmed     AttemptOutcome = "confirmed"
	OutcomeSlotNotFound  AttemptOutcome = "slot_not_found"
	OutcomeConflict      AttemptOutcome = "conflict"
	OutcomeUpstreamError AttemptOutcome = "upstream_error"
	OutcomeWeekNotFound  AttemptOutcome = "week_not_found"
)

// BookingAttempt is the audit record of one booking request, successful
// or not. Slot state itself is never persisted; the upstream service
// stays the single source of truth for the grid.
type BookingAttempt struct {
	ID           int64
	SlotStart    time.Time
	SlotEnd      *time.Time
	FacilityID   *string
	PatientName  string
	PatientEmail string
	Comments     string
	Outcome      AttemptOutcome
	Detail       *string
	CreatedAt    time.Time
}
