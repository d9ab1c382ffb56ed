package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	"github.com/alurfia/ALK-BookingService/internal/service/bookings"
	"github.com/alurfia/ALK-BookingService/internal/service/bookings/models"
)

const (
	msgMissingBookingID  = "ID бронирования обязателен"
	msgInvalidBody       = "некорректное тело запроса"
	msgNotFound          = "бронирование не найдено"
	msgInvalidStatus     = "недопустимый статус бронирования"
	msgInvalidTransition = "недопустимый переход статуса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid transition: booking_id=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated successfully: booking_id=%s, status=%s",
		bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
