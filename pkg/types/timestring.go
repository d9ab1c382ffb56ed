package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

const timeStringLayout = "15:04"

// TimeString время в формате "HH:MM" (24 часа, с ведущими нулями)
// Используется для времени начала/конца слотов и бронирований
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
// Значения >= 1440 нормализуются по модулю суток ("25:30" -> "01:30")
func NewTimeStringFromMinutes(minutes int) TimeString {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

const minutesPerDay = 24 * 60

// Validate проверяет, что строка является корректным временем "HH:MM"
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if _, err := time.Parse(timeStringLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала календарных суток
// Для невалидного значения возвращает ошибку
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед
// Переход через полночь нормализуется ("23:30" + 60 -> "00:30")
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + minutes), nil
}

// IsBefore проверяет, что t строго раньше other в пределах одних суток
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t строго позже other в пределах одних суток
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
