package get_schedule

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата попадает в окно предварительного бронирования
func validateDate(requestDate time.Time, now time.Time, maxPrebookDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// maxPrebookDays = 0 означает отсутствие ограничения
	if maxPrebookDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, maxPrebookDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: schedule is published %d days in advance", ErrDateTooFarInFuture, maxPrebookDays)
	}

	return nil
}
