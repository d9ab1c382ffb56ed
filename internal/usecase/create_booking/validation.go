package create_booking

import (
	"fmt"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: room ID is required", ErrInvalidInput)
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

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, maxPrebookDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// maxPrebookDays = 0 означает отсутствие ограничения
	if maxPrebookDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, maxPrebookDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxPrebookDays)
	}

	return nil
}

// validateInterval проверяет, что интервал лежит в операционных часах и
// выровнен по сетке слотов. Возвращает позицию интервала на оси
// операционного дня и его длительность в минутах.
func validateInterval(start, end, open, close types.TimeString, stepMinutes int) (int, int, error) {
	openMin, err := domain.ToMinutes(open, close)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeMin, err := domain.ToMinutes(close, close)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	startMin, endMin, err := domain.IntervalRange(start, end, close)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if startMin < openMin || endMin > closeMin {
		return 0, 0, fmt.Errorf("%w: interval %s-%s is outside operating hours %s-%s",
			ErrInvalidTimeSlot, start, end, open, close)
	}

	if (startMin-openMin)%stepMinutes != 0 || (endMin-openMin)%stepMinutes != 0 {
		return 0, 0, fmt.Errorf("%w: interval %s-%s is not aligned to %d-minute slots",
			ErrInvalidTimeSlot, start, end, stepMinutes)
	}

	return startMin, endMin, nil
}

// validateBookingTime проверяет, что сегодняшний слот еще не начался.
// Слоты после полуночи (на оси операционного дня) прошедшими не считаются.
func validateBookingTime(bookingDate time.Time, startMin int, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startMin >= domain.MinutesPerDay {
		return nil
	}

	nowMin, err := types.NewTimeString(now).Minutes()
	if err != nil {
		return fmt.Errorf("%w: failed to resolve current time: %v", ErrInternal, err)
	}

	if startMin < nowMin {
		return fmt.Errorf("%w: slot has already started", ErrTooLateToBook)
	}

	return nil
}

// hasConflict проверяет, пересекается ли интервал [startMin, endMin) с
// активным бронированием комнаты. Логика совпадает с построением расписания:
// бронирование датой запроса сравнивается напрямую, бронирование датой
// запрос+1 учитывается только как хвост смены за полночью.
func hasConflict(
	date time.Time,
	startMin, endMin int,
	bookings []*domain.BookingRecord,
	close types.TimeString,
) (bool, error) {
	nextDate := date.AddDate(0, 0, 1)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		var bStart, bEnd int
		var err error

		switch {
		case isSameDay(b.Date, date):
			bStart, bEnd, err = domain.IntervalRange(b.StartTime, b.EndTime, close)
			if err != nil {
				return false, err
			}

		case isSameDay(b.Date, nextDate):
			bStart, err = domain.ToMinutes(b.StartTime, close)
			if err != nil {
				return false, err
			}
			// Завтрашняя дневная бронь сегодняшнюю смену не трогает
			if bStart < domain.MinutesPerDay {
				continue
			}
			bEnd, err = domain.ToMinutes(b.EndTime, close)
			if err != nil {
				return false, err
			}
			if bEnd <= bStart {
				bEnd += domain.MinutesPerDay
			}

		default:
			continue
		}

		// Строгое пересечение: граничащие интервалы не конфликтуют
		if bStart < endMin && bEnd > startMin {
			return true, nil
		}
	}

	return false, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
