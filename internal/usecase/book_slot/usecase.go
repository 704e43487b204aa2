package book_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jporcarn/dralia/internal/domain"
	slotClient "github.com/jporcarn/dralia/internal/integrations/slotservice"
	getWeeklySlots "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
	"github.com/jporcarn/dralia/pkg/isoweek"
	"github.com/jporcarn/dralia/pkg/ptr"
)

// UseCase use case бронирования слота.
//
// Слот ищется точным совпадением момента начала в свежепересчитанной
// сетке той же недели. Занятость слота локально НЕ проверяется: апстрим -
// единственный авторитет по двойному бронированию, его отказ всплывает
// как конфликт и не ретраится.
type UseCase struct {
	weeklySlots WeeklySlotsProvider
	reservation ReservationClient
	recorder    AttemptRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	weeklySlots WeeklySlotsProvider,
	reservation ReservationClient,
	recorder AttemptRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		weeklySlots: weeklySlots,
		reservation: reservation,
		recorder:    recorder,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: start=%s, patient=%s", req.Start.Format(time.RFC3339), req.Patient.Name)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	start := req.Start.UTC()

	// 2. Выводим ключ недели из запрошенного момента тем же правилом,
	// что и операция получения расписания (критичный инвариант: другое
	// правило разрешило бы другой понедельник и отвергло валидный слот).
	year, week := isoweek.WeekOf(start)
	monday := isoweek.MondayOf(year, week)

	// 3. Пересчитываем сетку недели с нуля
	weeklySlots, err := uc.weeklySlots.WeeklySlotsByMonday(ctx, monday)
	if err != nil {
		mapped := uc.mapProviderError(start, err)
		uc.recordAttempt(ctx, req, nil, nil, outcomeForError(mapped), mapped)
		return nil, mapped
	}

	// 4. Ищем слот с точно совпадающим началом. Запрос мимо границы
	// слота падает, а не прилипает к ближайшему; пустые слоты-заглушки
	// не участвуют в поиске и потому никогда не бронируются.
	slot := weeklySlots.FindSlotByStart(start)
	if slot == nil {
		uc.logger.Warn("BookSlot: no slot starts at %s", start.Format(time.RFC3339))
		uc.recordAttempt(ctx, req, nil, &weeklySlots.Facility, domain.OutcomeSlotNotFound, nil)
		return nil, ErrSlotNotFound
	}

	// 5. Конец слота: начало плюс длительность слота недели
	end := start.Add(weeklySlots.SlotDuration())

	// 6. Собираем команду резервирования и передаем её апстриму
	takeSlot := &slotClient.TakeSlotDTO{
		FacilityID: weeklySlots.Facility.ID,
		Start:      start,
		End:        end,
		Comments:   req.Comments,
		Patient: slotClient.PatientDTO{
			Name:       req.Patient.Name,
			SecondName: req.Patient.SecondName,
			Email:      req.Patient.Email,
			Phone:      req.Patient.Phone,
		},
	}

	if err := uc.reservation.TakeSlot(ctx, takeSlot); err != nil {
		mapped := uc.mapReservationError(start, err)
		uc.recordAttempt(ctx, req, &end, &weeklySlots.Facility, outcomeForError(mapped), mapped)
		return nil, mapped
	}

	uc.logger.Info("BookSlot: reserved slot start=%s, end=%s, facility=%s",
		start.Format(time.RFC3339), end.Format(time.RFC3339), weeklySlots.Facility.ID)
	uc.recordAttempt(ctx, req, &end, &weeklySlots.Facility, domain.OutcomeConfirmed, nil)

	return &Response{
		FacilityID: weeklySlots.Facility.ID,
		Start:      start,
		End:        end,
		Year:       year,
		Week:       week,
	}, nil
}

// recordAttempt пишет попытку в журнал. Журнал - best effort: его сбой
// логируется и никогда не валит бронирование.
func (uc *UseCase) recordAttempt(
	ctx context.Context,
	req *Request,
	end *time.Time,
	facility *domain.Facility,
	outcome domain.AttemptOutcome,
	cause error,
) {
	attempt := &domain.BookingAttempt{
		SlotStart:    req.Start.UTC(),
		SlotEnd:      end,
		PatientName:  req.Patient.Name,
		PatientEmail: req.Patient.Email,
		Comments:     req.Comments,
		Outcome:      outcome,
	}
	if facility != nil {
		attempt.FacilityID = ptr.Ptr(facility.ID.String())
	}
	if cause != nil {
		attempt.Detail = ptr.Ptr(cause.Error())
	}

	if err := uc.recorder.Record(ctx, attempt); err != nil {
		uc.logger.Error("BookSlot: failed to record booking attempt: %v", err)
	}
}

func outcomeForError(err error) domain.AttemptOutcome {
	switch {
	case errors.Is(err, ErrSlotAlreadyTaken):
		return domain.OutcomeConflict
	case errors.Is(err, ErrSlotNotFound):
		return domain.OutcomeWeekNotFound
	default:
		return domain.OutcomeUpstreamError
	}
}

// mapProviderError переводит ошибки пересчета сетки в ошибки usecase.
// Отсутствие данных за неделю означает, что запрошенному началу не
// соответствует ни один слот.
func (uc *UseCase) mapProviderError(start time.Time, err error) error {
	startStr := start.Format(time.RFC3339)

	switch {
	case errors.Is(err, getWeeklySlots.ErrWeekNotFound):
		uc.logger.Warn("BookSlot: no availability for week of %s", startStr)
		return ErrSlotNotFound
	case errors.Is(err, getWeeklySlots.ErrUpstreamTimeout):
		uc.logger.Error("BookSlot: availability fetch timed out for %s: %v", startStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	case errors.Is(err, getWeeklySlots.ErrDataShape):
		uc.logger.Error("BookSlot: bad availability payload for %s: %v", startStr, err)
		return fmt.Errorf("%w: %v", ErrDataShape, err)
	case errors.Is(err, getWeeklySlots.ErrUpstreamUnavailable):
		uc.logger.Error("BookSlot: availability service unavailable for %s: %v", startStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("BookSlot: failed to recompute weekly slots for %s: %v", startStr, err)
		return fmt.Errorf("%w: failed to recompute weekly slots: %v", ErrInternal, err)
	}
}

// mapReservationError переводит ошибки клиента резервирования в ошибки usecase
func (uc *UseCase) mapReservationError(start time.Time, err error) error {
	startStr := start.Format(time.RFC3339)

	switch {
	case errors.Is(err, slotClient.ErrSlotAlreadyTaken):
		uc.logger.Warn("BookSlot: slot at %s already taken", startStr)
		return ErrSlotAlreadyTaken
	case errors.Is(err, slotClient.ErrTimeout):
		uc.logger.Error("BookSlot: reservation timed out for %s: %v", startStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	default:
		uc.logger.Error("BookSlot: reservation failed for %s: %v", startStr, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
}
