package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxPrebookDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда интервал не попадает в сетку
	// слотов или выходит за операционные часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается при попытке забронировать уже прошедший сегодня слот
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
