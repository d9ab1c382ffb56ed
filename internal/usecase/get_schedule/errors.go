package get_schedule

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("get_schedule: invalid schedule date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxPrebookDays
	ErrDateTooFarInFuture = errors.New("get_schedule: date is too far in the future")

	// ErrAmbiguousBookingMatch возвращается, когда на один слот претендует
	// больше одного активного бронирования - нарушение целостности данных
	// на стороне Booking API, расписание в таком состоянии не публикуется
	ErrAmbiguousBookingMatch = errors.New("get_schedule: ambiguous booking match for slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
