package quote_price

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("quote_price: room not found")

	// ErrInvalidInterval возвращается при некорректном интервале бронирования
	ErrInvalidInterval = errors.New("quote_price: invalid booking interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
