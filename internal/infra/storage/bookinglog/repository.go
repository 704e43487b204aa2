package bookinglog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jporcarn/dralia/internal/domain"
	"github.com/jporcarn/dralia/pkg/psqlbuilder"
)

// Repository журнал попыток бронирования.
// Хранит только аудит: состояния слотов в базе нет, сетка каждый раз
// пересчитывается из ответа апстрима.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record записывает попытку бронирования и её исход
func (r *Repository) Record(ctx context.Context, attempt *domain.BookingAttempt) error {
	query, args, err := psqlbuilder.Insert("booking_attempts").
		Columns(
			"slot_start",
			"slot_end",
			"facility_id",
			"patient_name",
			"patient_email",
			"comments",
			"outcome",
			"detail",
		).
		Values(
			attempt.SlotStart,
			attempt.SlotEnd,
			attempt.FacilityID,
			attempt.PatientName,
			attempt.PatientEmail,
			attempt.Comments,
			string(attempt.Outcome),
			attempt.Detail,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&attempt.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}
	attempt.CreatedAt = createdAt.Time

	return nil
}

// ListRecent возвращает последние попытки бронирования (для разбора инцидентов)
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"slot_start",
		"slot_end",
		"facility_id",
		"patient_name",
		"patient_email",
		"comments",
		"outcome",
		"detail",
		"created_at",
	).
		From("booking_attempts").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var attempts []*domain.BookingAttempt
	for rows.Next() {
		var attempt domain.BookingAttempt
		var outcome string

		err := rows.Scan(
			&attempt.ID,
			&attempt.SlotStart,
			&attempt.SlotEnd,
			&attempt.FacilityID,
			&attempt.PatientName,
			&attempt.PatientEmail,
			&attempt.Comments,
			&outcome,
			&attempt.Detail,
			&attempt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}

		attempt.Outcome = domain.AttemptOutcome(outcome)
		attempts = append(attempts, &attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrExecQuery, err)
	}

	return attempts, nil
}
