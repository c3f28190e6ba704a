package rebook_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.TreatmentID != nil && *req.TreatmentID <= 0 {
		return fmt.Errorf("%w: treatmentID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}

// validateInterval проверяет, что новый интервал не в прошлом и
// укладывается в рабочие часы салона
func validateInterval(start, end time.Time, now time.Time, workDay domain.WorkDay) error {
	if start.Before(now) {
		return ErrDateInPast
	}

	opens := workDay.OpensAt(start)
	closes := workDay.ClosesAt(start)

	if start.Before(opens) || end.After(closes) {
		return fmt.Errorf("%w: interval %s-%s not within %s-%s",
			ErrOutsideWorkingHours,
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat),
			opens.Format(domain.TimeFormat), closes.Format(domain.TimeFormat))
	}

	return nil
}
