package book_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jporcarn/dralia/internal/api/handlers"
	"github.com/jporcarn/dralia/internal/domain"
	bookSlot "github.com/jporcarn/dralia/internal/usecase/book_slot"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
)

type fakeBookUseCase struct {
	resp    *bookSlot.Response
	err     error
	lastReq *bookSlot.Request
}

func (f *fakeBookUseCase) Execute(_ context.Context, req *bookSlot.Request) (*bookSlot.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeWeeklyUseCase struct {
	week    *domain.WeeklySlots
	err     error
	lastReq *getWeeklySlots.Request
}

func (f *fakeWeeklyUseCase) Execute(_ context.Context, req *getWeeklySlots.Request) (*domain.WeeklySlots, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.week, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testStart = time.Date(2026, time.July, 13, 9, 30, 0, 0, time.UTC)

func testResponse(facilityID uuid.UUID) *bookSlot.Response {
	return &bookSlot.Response{
		FacilityID: facilityID,
		Start:      testStart,
		End:        testStart.Add(30 * time.Minute),
		Year:       2026,
		Week:       29,
	}
}

func testWeek(facilityID uuid.UUID) *domain.WeeklySlots {
	monday := time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC)

	week := &domain.WeeklySlots{
		Facility:            domain.Facility{ID: facilityID, Name: "Las Palmeras"},
		SlotDurationMinutes: 30,
	}
	for i := 0; i < domain.BusinessDaysPerWeek; i++ {
		week.Days[i] = domain.DailySlots{
			Date:      monday.AddDate(0, 0, i),
			DayOfWeek: domain.BusinessDayName(i),
		}
	}
	return week
}

func validBody(start time.Time) []byte {
	body, _ := json.Marshal(BookSlotRequest{
		Start:    start,
		Comments: "my knee hurts",
		Patient: PatientRequest{
			Name:  "Mario",
			Email: "mario.neta@example.com",
			Phone: "+34666777888",
		},
	})
	return body
}

// doRequest гоняет запрос через роутер mux, чтобы path-переменные заполнялись
// так же, как в продакшене
func doRequest(t *testing.T, h *Handler, startDate string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/slot/{startDate}/book", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/slot/"+startDate+"/book", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	facilityID := uuid.New()
	bookUC := &fakeBookUseCase{resp: testResponse(facilityID)}
	weeklyUC := &fakeWeeklyUseCase{week: testWeek(facilityID)}
	h := NewHandler(bookUC, weeklyUC, nopLogger{})

	rec := doRequest(t, h, testStart.Format(time.RFC3339), validBody(testStart))

	require.Equal(t, http.StatusCreated, rec.Code)

	// Use case получил данные пациента как есть
	require.NotNil(t, bookUC.lastReq)
	assert.True(t, bookUC.lastReq.Start.Equal(testStart))
	assert.Equal(t, "Mario", bookUC.lastReq.Patient.Name)
	assert.Equal(t, "my knee hurts", bookUC.lastReq.Comments)

	// Сетка в ответе пересчитана для недели забронированного слота
	require.NotNil(t, weeklyUC.lastReq)
	assert.Equal(t, 2026, weeklyUC.lastReq.Year)
	assert.Equal(t, 29, weeklyUC.lastReq.Week)

	var body handlers.WeeklySlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, facilityID.String(), body.Facility.FacilityID)
}

func TestHandle_InvalidStartDate(t *testing.T) {
	bookUC := &fakeBookUseCase{}
	h := NewHandler(bookUC, &fakeWeeklyUseCase{}, nopLogger{})

	rec := doRequest(t, h, "not-a-date", validBody(testStart))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, bookUC.lastReq)
}

func TestHandle_MalformedBody(t *testing.T) {
	bookUC := &fakeBookUseCase{}
	h := NewHandler(bookUC, &fakeWeeklyUseCase{}, nopLogger{})

	rec := doRequest(t, h, testStart.Format(time.RFC3339), []byte(`{"start": 42}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, bookUC.lastReq)
}

func TestHandle_StartMismatch(t *testing.T) {
	// Дата в URL и дата в теле обязаны указывать на один слот
	bookUC := &fakeBookUseCase{}
	h := NewHandler(bookUC, &fakeWeeklyUseCase{}, nopLogger{})

	otherStart := testStart.Add(30 * time.Minute)
	rec := doRequest(t, h, testStart.Format(time.RFC3339), validBody(otherStart))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, bookUC.lastReq)
}

func TestHandle_SameInstantDifferentZoneAccepted(t *testing.T) {
	// Сравниваются моменты, а не строки: +02:00 запись того же момента проходит
	facilityID := uuid.New()
	bookUC := &fakeBookUseCase{resp: testResponse(facilityID)}
	h := NewHandler(bookUC, &fakeWeeklyUseCase{week: testWeek(facilityID)}, nopLogger{})

	madrid := testStart.In(time.FixedZone("CEST", 2*3600))
	rec := doRequest(t, h, madrid.Format(time.RFC3339), validBody(testStart))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", bookSlot.ErrInvalidInput, http.StatusBadRequest},
		{"slot not found", bookSlot.ErrSlotNotFound, http.StatusNotFound},
		{"slot already taken", bookSlot.ErrSlotAlreadyTaken, http.StatusConflict},
		{"upstream timeout", bookSlot.ErrUpstreamTimeout, http.StatusGatewayTimeout},
		{"upstream unavailable", bookSlot.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"bad payload", bookSlot.ErrDataShape, http.StatusUnprocessableEntity},
		{"internal", bookSlot.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeBookUseCase{err: tc.err}, &fakeWeeklyUseCase{}, nopLogger{})

			rec := doRequest(t, h, testStart.Format(time.RFC3339), validBody(testStart))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandle_BookingSurvivesGridRefreshFailure(t *testing.T) {
	// Бронирование состоялось; сбой пересчета сетки не превращается в ошибку
	facilityID := uuid.New()
	bookUC := &fakeBookUseCase{resp: testResponse(facilityID)}
	weeklyUC := &fakeWeeklyUseCase{err: getWeeklySlots.ErrUpstreamTimeout}
	h := NewHandler(bookUC, weeklyUC, nopLogger{})

	rec := doRequest(t, h, testStart.Format(time.RFC3339), validBody(testStart))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
