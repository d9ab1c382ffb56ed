package get_schedule

import (
	"fmt"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// indexBookingsByRoom группирует бронирования по комнатам, чтобы не сканировать
// весь список на каждую ячейку сетки
func indexBookingsByRoom(bookings []*domain.BookingRecord) map[string][]*domain.BookingRecord {
	byRoom := make(map[string][]*domain.BookingRecord)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}
	return byRoom
}

// resolveSlot определяет статус одной ячейки (комната, слот) по списку
// бронирований этой комнаты.
//
// Слот занимает [slotLabel, nextSlotLabel) на оси операционного дня.
// Бронирование датой запроса сравнивается напрямую; бронирование датой
// запрос+1 - это хвост вчерашней смены, ушедший за полночь, и учитывается
// только когда и сам слот, и начало бронирования лежат в утреннем
// продолжении смены (обе точки пересекли полночь на числовой оси).
// Бронирование датой запрос+1 с началом в обычные часы - это завтрашняя
// бронь, сегодняшнюю сетку она не трогает.
//
// Пересечение интервалов строгое: граничащие интервалы не пересекаются.
// Отмененные бронирования слот не блокируют.
func resolveSlot(
	date time.Time,
	slotLabel, nextSlotLabel types.TimeString,
	roomBookings []*domain.BookingRecord,
	closeTime types.TimeString,
) (domain.SlotStatus, *domain.BookingRecord, error) {
	slotStart, err := domain.ToMinutes(slotLabel, closeTime)
	if err != nil {
		return "", nil, err
	}
	slotEnd, err := domain.ToMinutes(nextSlotLabel, closeTime)
	if err != nil {
		return "", nil, err
	}
	if slotEnd <= slotStart {
		slotEnd += domain.MinutesPerDay
	}

	nextDate := date.AddDate(0, 0, 1)

	var matched []*domain.BookingRecord
	for _, b := range roomBookings {
		if !b.IsActive() {
			continue
		}

		var bookingStart, bookingEnd int
		switch {
		case isSameDay(b.Date, date):
			bookingStart, bookingEnd, err = domain.IntervalRange(b.StartTime, b.EndTime, closeTime)
			if err != nil {
				return "", nil, err
			}

		case isSameDay(b.Date, nextDate):
			// Слот до полуночи завтрашняя бронь занять не может
			if slotStart < domain.MinutesPerDay {
				continue
			}
			bookingStart, err = domain.ToMinutes(b.StartTime, closeTime)
			if err != nil {
				return "", nil, err
			}
			// Бронь с началом в обычные часы - не хвост смены
			if bookingStart < domain.MinutesPerDay {
				continue
			}
			bookingEnd, err = domain.ToMinutes(b.EndTime, closeTime)
			if err != nil {
				return "", nil, err
			}
			if bookingEnd <= bookingStart {
				bookingEnd += domain.MinutesPerDay
			}

		default:
			continue
		}

		if bookingStart < slotEnd && bookingEnd > slotStart {
			matched = append(matched, b)
		}
	}

	switch len(matched) {
	case 0:
		return domain.SlotAvailable, nil, nil
	case 1:
		return slotStatusForBooking(matched[0]), matched[0], nil
	default:
		return "", nil, fmt.Errorf("%w: room=%s slot=%s overlapping=%d",
			ErrAmbiguousBookingMatch, matched[0].RoomID, slotLabel, len(matched))
	}
}

// slotStatusForBooking отображает статус бронирования в статус ячейки
func slotStatusForBooking(b *domain.BookingRecord) domain.SlotStatus {
	if b.Status == domain.StatusPending {
		return domain.SlotPending
	}
	return domain.SlotBooked
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
