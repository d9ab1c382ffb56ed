package domain

// CalculatePrice вычисляет стоимость бронирования длительностью
// durationMinutes при получасовой ставке halfHourRate.
//
// Схема тарификации:
//   - базовая часовая ставка = halfHourRate * 2
//   - скидка по числу полных часов: до 1 часа без скидки, далее
//     HourlyDiscountStep за каждый следующий полный час, максимум
//     MaxDiscountSteps ступеней
//   - длительность с неполным часом дает фиксированную доплату
//     HalfHourSurcharge, при этом ступень скидки выбирается по длительности
//     без хвостового получаса (2.5 часа тарифицируются по ступени 2 часов)
//   - итог = доплата + часовая ставка * полная дробная длительность в часах
//   - пиковые часы умножают итог на PeakMultiplier
//
// Результат не округляется: форматирование валюты - забота отображения.
func CalculatePrice(halfHourRate float64, durationMinutes int, isPeak bool) (float64, error) {
	if durationMinutes <= 0 {
		return 0, ErrInvalidDuration
	}

	hours := float64(durationMinutes) / 60

	var surcharge float64
	if durationMinutes%60 != 0 {
		surcharge = HalfHourSurcharge
	}

	// Ступень скидки выбирается по целому числу часов: для 150 минут это 2,
	// то есть неполный час не продвигает бронирование на следующую ступень
	wholeHours := durationMinutes / 60
	steps := 0
	switch {
	case wholeHours <= 1:
		steps = 0
	case wholeHours <= 2:
		steps = 1
	case wholeHours <= 3:
		steps = 2
	default:
		steps = MaxDiscountSteps
	}

	hourlyRate := halfHourRate*2 - float64(steps)*HourlyDiscountStep

	total := surcharge + hourlyRate*hours
	if isPeak {
		total *= PeakMultiplier
	}

	return total, nil
}
