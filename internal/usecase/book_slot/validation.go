package book_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.Patient.Name == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}

	if req.Patient.Phone == "" && req.Patient.Email == "" {
		return fmt.Errorf("%w: patient phone or email is required", ErrInvalidInput)
	}

	return nil
}
