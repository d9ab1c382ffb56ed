package bookingapi

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("bookingapi client: room not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrConflict возвращается, когда API отклонил создание из-за пересечения интервалов
	ErrConflict = errors.New("bookingapi client: booking interval conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
