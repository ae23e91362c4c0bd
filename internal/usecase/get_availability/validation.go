package get_availability

import (
	"fmt"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// validateRequest валидирует параметры запроса доступности
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.Seats <= 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}
	if req.Seats > domain.MaxSeatsPerRequest {
		return fmt.Errorf("%w: seats must not exceed %d", ErrInvalidInput, domain.MaxSeatsPerRequest)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.TableID != nil && *req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.StepMinutes != 0 && (req.StepMinutes < domain.MinStepMinutes || req.StepMinutes > domain.MaxStepMinutes) {
		return fmt.Errorf("%w: step must be between %d and %d minutes",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	return nil
}
