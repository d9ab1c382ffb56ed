package verify_slip

import (
	"fmt"
	"math"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/integrations/slipverify"
)

// Допустимое расхождение сумм из-за представления float в ответе сервиса
const amountTolerance = 0.01

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: booking ID is required", ErrInvalidInput)
	}

	if req.Filename == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	if req.File == nil {
		return fmt.Errorf("%w: slip image is required", ErrInvalidInput)
	}

	return nil
}

// validatePayment проверяет распознанный платеж против бронирования
func validatePayment(data slipverify.VerificationData, bookingTotal float64, now time.Time) error {
	if math.Abs(data.Amount-bookingTotal) > amountTolerance {
		return fmt.Errorf("%w: paid %.2f, expected %.2f", ErrAmountMismatch, data.Amount, bookingTotal)
	}

	// Слип принимается только в день платежа и на следующий день:
	// платеж за смену, ушедшую за полночь, приходит уже завтрашней датой
	paidDay := time.Date(data.DateTime.Year(), data.DateTime.Month(), data.DateTime.Day(), 0, 0, 0, 0, time.UTC)
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if paidDay.After(nowDay) {
		return fmt.Errorf("%w: slip is dated in the future", ErrSlipExpired)
	}

	if nowDay.Sub(paidDay) > 24*time.Hour {
		return fmt.Errorf("%w: slip is older than one day", ErrSlipExpired)
	}

	return nil
}
