package verify_slip

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	verifySlip "github.com/alurfia/ALK-BookingService/internal/usecase/verify_slip"
)

// Лимит на размер изображения слипа
const maxSlipSizeBytes = 10 << 20 // 10 MiB

const (
	msgMissingBookingID  = "ID бронирования обязателен"
	msgMissingSlipFile   = "изображение слипа обязательно"
	msgBookingNotFound   = "бронирование не найдено"
	msgBookingNotPending = "бронирование не ожидает оплаты"
	msgSlipRejected      = "слип не прошел проверку"
	msgAmountMismatch    = "сумма на слипе не совпадает со стоимостью бронирования"
	msgSlipExpired       = "слип устарел или датирован будущим"
)

type Handler struct {
	useCase VerifySlipUseCase
	logger  Logger
}

func NewHandler(useCase VerifySlipUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/verify-slip
// Multipart form: file (required, изображение слипа)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/verify-slip - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	if err := r.ParseMultipartForm(maxSlipSizeBytes); err != nil {
		h.logger.Warn("POST /bookings/{id}/verify-slip - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgMissingSlipFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/verify-slip - Missing slip file: %v", err)
		handlers.RespondBadRequest(w, msgMissingSlipFile)
		return
	}
	defer file.Close()

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &verifySlip.Request{
		BookingID: bookingID,
		Filename:  header.Filename,
		File:      file,
	})
	if err != nil {
		switch {
		case errors.Is(err, verifySlip.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlipFile)

		case errors.Is(err, verifySlip.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, verifySlip.ErrBookingNotPending):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Booking not pending: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingNotPending)

		case errors.Is(err, verifySlip.ErrSlipRejected):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Slip rejected: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgSlipRejected)

		case errors.Is(err, verifySlip.ErrAmountMismatch):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Amount mismatch: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgAmountMismatch)

		case errors.Is(err, verifySlip.ErrSlipExpired):
			h.logger.Warn("POST /bookings/{id}/verify-slip - Slip expired: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgSlipExpired)

		default:
			h.logger.Error("POST /bookings/{id}/verify-slip - Failed to verify slip: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/verify-slip - Booking confirmed: booking_id=%s, trans_ref=%s",
		result.BookingID, result.TransRef)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
