package domain

import "errors"

var (
	// ErrInvalidDuration возвращается при нулевой или отрицательной длительности
	ErrInvalidDuration = errors.New("domain: duration must be positive")

	// ErrInvalidSlotStep возвращается при некорректном шаге сетки слотов
	ErrInvalidSlotStep = errors.New("domain: slot step must be positive")
)
