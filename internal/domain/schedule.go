package domain

import (
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Арифметика операционного дня.
//
// Заведение закрывается после полуночи, поэтому календарные сутки и
// операционный день не совпадают: слот "00:30" принадлежит вчерашней смене.
// Все сравнения времени выполняются на одной числовой оси - минуты с начала
// операционного дня. Время, не превышающее время закрытия, относится к
// следующим календарным суткам и получает +1440.

// ToMinutes переводит время "HH:MM" в минуты операционного дня
// Время, равное времени закрытия, тоже считается следующими сутками:
// это граница последнего слота, а не последний момент текущего дня
func ToMinutes(t, close types.TimeString) (int, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	c, err := close.Minutes()
	if err != nil {
		return 0, err
	}
	if m <= c {
		m += MinutesPerDay
	}
	return m, nil
}

// IntervalRange возвращает интервал [start, end) бронирования в минутах
// операционного дня. Если конец не позже начала, интервал пересек полночь
// и конец сдвигается на сутки вперед
func IntervalRange(start, end, close types.TimeString) (int, int, error) {
	s, err := ToMinutes(start, close)
	if err != nil {
		return 0, 0, err
	}
	e, err := ToMinutes(end, close)
	if err != nil {
		return 0, 0, err
	}
	if e <= s {
		e += MinutesPerDay
	}
	return s, e, nil
}

// GenerateSlots генерирует упорядоченную последовательность меток слотов от
// открытия до закрытия включительно, с фиксированным шагом stepMinutes.
// Последняя метка обозначает границу закрытия, а не бронируемый слот -
// обрезать ее или нет, решает вызывающая сторона.
func GenerateSlots(open, close types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidSlotStep
	}

	openMin, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return nil, err
	}

	// Закрытие "раньше" открытия означает переход через полночь
	if closeMin < openMin {
		closeMin += MinutesPerDay
	}

	slots := make([]types.TimeString, 0, (closeMin-openMin)/stepMinutes+1)
	for m := openMin; m <= closeMin; m += stepMinutes {
		slots = append(slots, types.NewTimeStringFromMinutes(m))
	}

	return slots, nil
}
