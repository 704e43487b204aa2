package list_booking_attempts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jporcarn/dralia/internal/api/handlers"
	"github.com/jporcarn/dralia/internal/domain"
	"github.com/jporcarn/dralia/pkg/ptr"
)

type fakeLister struct {
	attempts  []*domain.BookingAttempt
	err       error
	lastLimit uint64
	calls     int
}

func (f *fakeLister) ListRecent(_ context.Context, limit uint64) ([]*domain.BookingAttempt, error) {
	f.calls++
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.attempts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAttempts() []*domain.BookingAttempt {
	start := time.Date(2026, time.July, 13, 9, 30, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	return []*domain.BookingAttempt{
		{
			ID:           2,
			SlotStart:    start,
			SlotEnd:      &end,
			FacilityID:   ptr.Ptr(uuid.New().String()),
			PatientName:  "Mario",
			PatientEmail: "mario.neta@example.com",
			Comments:     "my knee hurts",
			Outcome:      domain.OutcomeConfirmed,
			CreatedAt:    end,
		},
		{
			ID:          1,
			SlotStart:   start,
			PatientName: "Mario",
			Outcome:     domain.OutcomeConflict,
			Detail:      ptr.Ptr("slot already taken"),
			CreatedAt:   start,
		},
	}
}

func doRequest(t *testing.T, h *Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	lister := &fakeLister{attempts: testAttempts()}
	h := NewHandler(lister, nopLogger{})

	rec := doRequest(t, h, "/booking-attempts")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(50), lister.lastLimit)

	var body ListBookingAttemptsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Attempts, 2)

	assert.Equal(t, int64(2), body.Attempts[0].ID)
	assert.Equal(t, "confirmed", body.Attempts[0].Outcome)
	require.NotNil(t, body.Attempts[0].SlotEnd)
	assert.Equal(t, "Mario", body.Attempts[0].PatientName)

	// Неуспешная попытка несет причину, но не конец слота
	assert.Equal(t, "conflict", body.Attempts[1].Outcome)
	require.NotNil(t, body.Attempts[1].Detail)
	assert.Equal(t, "slot already taken", *body.Attempts[1].Detail)
	assert.Nil(t, body.Attempts[1].SlotEnd)
}

func TestHandle_CustomLimit(t *testing.T) {
	lister := &fakeLister{}
	h := NewHandler(lister, nopLogger{})

	rec := doRequest(t, h, "/booking-attempts?limit=200")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(200), lister.lastLimit)

	// Пустой журнал отдается пустым списком, не null
	var body ListBookingAttemptsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Attempts)
	assert.Empty(t, body.Attempts)
}

func TestHandle_LimitValidation(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"not a number", "/booking-attempts?limit=abc"},
		{"zero", "/booking-attempts?limit=0"},
		{"negative", "/booking-attempts?limit=-5"},
		{"over max", "/booking-attempts?limit=501"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := &fakeLister{}
			h := NewHandler(lister, nopLogger{})

			rec := doRequest(t, h, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// До журнала невалидный запрос не доходит
			assert.Zero(t, lister.calls)
		})
	}
}

func TestHandle_ListerFailure(t *testing.T) {
	lister := &fakeLister{err: context.DeadlineExceeded}
	h := NewHandler(lister, nopLogger{})

	rec := doRequest(t, h, "/booking-attempts")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}
