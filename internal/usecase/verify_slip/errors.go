package verify_slip

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("verify_slip: booking not found")

	// ErrBookingNotPending возвращается, когда бронирование уже подтверждено или отменено
	ErrBookingNotPending = errors.New("verify_slip: booking is not awaiting payment")

	// ErrSlipRejected возвращается, когда сервис не распознал слип или
	// пометил его как невалидный
	ErrSlipRejected = errors.New("verify_slip: slip verification rejected")

	// ErrAmountMismatch возвращается, когда сумма на слипе не совпадает со стоимостью бронирования
	ErrAmountMismatch = errors.New("verify_slip: slip amount does not match booking total")

	// ErrSlipExpired возвращается, когда время платежа на слипе вне допустимого окна
	ErrSlipExpired = errors.New("verify_slip: slip timestamp is outside the allowed window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_slip: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_slip: internal error")
)
