package get_weekly_slots

import (
	"fmt"

	"github.com/jporcarn/dralia/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	if req.Week < domain.MinWeekNumber || req.Week > domain.MaxWeekNumber {
		return fmt.Errorf("%w: week number must be between %d and %d",
			ErrInvalidInput, domain.MinWeekNumber, domain.MaxWeekNumber)
	}

	return nil
}
