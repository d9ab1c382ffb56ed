package slipverify

import "errors"

var (
	// ErrUnreadableSlip возвращается, когда сервис не смог распознать QR на слипе
	ErrUnreadableSlip = errors.New("slipverify client: slip image is not readable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slipverify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("slipverify client: invalid response")
)
