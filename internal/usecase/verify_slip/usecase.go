package verify_slip

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
	"github.com/alurfia/ALK-BookingService/internal/integrations/slipverify"
)

// UseCase use case проверки платежного слипа и подтверждения бронирования
type UseCase struct {
	bookingClient BookingAPIClient
	slipClient    SlipVerifyClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingClient BookingAPIClient, slipClient SlipVerifyClient, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: bookingClient,
		slipClient:    slipClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute проверяет слип и переводит бронирование в статус booked.
// Сумма платежа должна точно совпадать со стоимостью бронирования,
// а время платежа - попадать в допустимое окно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifySlip: booking=%s file=%s", req.BookingID, req.Filename)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VerifySlip: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingClient.GetBooking(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			uc.logger.Warn("VerifySlip: booking not found: %s", req.BookingID)
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, req.BookingID)
		}
		uc.logger.Error("VerifySlip: failed to get booking %s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Платеж принимается только по ожидающему бронированию
	if booking.Status != domain.StatusPending {
		uc.logger.Warn("VerifySlip: booking %s has status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrBookingNotPending, booking.Status)
	}

	// 4. Отправляем слип на распознавание
	verification, err := uc.slipClient.VerifySlipImage(ctx, req.Filename, req.File)
	if err != nil {
		if errors.Is(err, slipverify.ErrUnreadableSlip) {
			uc.logger.Warn("VerifySlip: unreadable slip for booking %s", booking.ID)
			return nil, fmt.Errorf("%w: slip image is not readable", ErrSlipRejected)
		}
		uc.logger.Error("VerifySlip: verification request failed: %v", err)
		return nil, fmt.Errorf("%w: verification request failed: %v", ErrInternal, err)
	}

	if !verification.IsSuccessful() {
		uc.logger.Warn("VerifySlip: verification rejected for booking %s: code=%s message=%s",
			booking.ID, verification.Code, verification.Message)
		return nil, fmt.Errorf("%w: code=%s", ErrSlipRejected, verification.Code)
	}

	// 5. Проверяем сумму и время платежа
	now := uc.timeProvider.Now()
	if err := validatePayment(verification.Data, booking.TotalPrice, now); err != nil {
		uc.logger.Warn("VerifySlip: payment validation failed for booking %s: %v", booking.ID, err)
		return nil, err
	}

	// 6. Подтверждаем бронирование
	updated, err := uc.bookingClient.UpdateBookingStatus(ctx, booking.ID, domain.StatusBooked, nil)
	if err != nil {
		uc.logger.Error("VerifySlip: failed to confirm booking %s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	uc.logger.Info("VerifySlip: booking %s confirmed, transRef=%s", updated.ID, verification.Data.TransRef)

	return &Response{
		BookingID:  updated.ID,
		RoomID:     updated.RoomID,
		Date:       updated.Date,
		StartTime:  updated.StartTime,
		EndTime:    updated.EndTime,
		Status:     string(updated.Status),
		TotalPrice: updated.TotalPrice,
		TransRef:   verification.Data.TransRef,
		PaidAmount: verification.Data.Amount,
		PaidAt:     verification.Data.DateTime,
	}, nil
}
