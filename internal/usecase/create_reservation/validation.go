package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// validateRequest валидирует форму запроса до обращения к данным
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
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

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLen {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateNotice проверяет минимальное время предупреждения. Момент начала
// брони интерпретируется в часовом поясе заведения и сравнивается с
// отсечкой now + minNoticeMinutes.
func validateNotice(
	date time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
	loc *time.Location,
) error {
	mins, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, loc)
	cutoff := now.In(loc).Add(time.Duration(minNoticeMinutes) * time.Minute)

	if startAt.Before(cutoff) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}
	return nil
}
