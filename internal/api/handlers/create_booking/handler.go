package create_booking

import (
	"errors"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	createBooking "github.com/alurfia/ALK-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrTime = "некорректный формат даты или времени"
	msgInvalidInput      = "некорректные входные данные"
	msgRoomNotFound      = "комната не найдена"
	msgDateInPast        = "дата уже прошла"
	msgDateTooFar        = "бронирование на эту дату еще не открыто"
	msgInvalidTimeSlot   = "интервал не попадает в сетку слотов или рабочие часы"
	msgTooLateToBook     = "слот уже начался"
	msgSlotNotAvailable  = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: room_id=%s, start=%s, end=%s",
				req.RoomID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: room_id=%s, start=%s", req.RoomID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%s, date=%s, start=%s",
				req.RoomID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s, total=%.2f",
		result.ID, result.RoomID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
