package verify_slip

import (
	"context"
	"io"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/slipverify"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, reason *string) (*domain.BookingRecord, error)
}

// SlipVerifyClient интерфейс клиента сервиса проверки слипов
type SlipVerifyClient interface {
	VerifySlipImage(ctx context.Context, filename string, file io.Reader) (*slipverify.VerificationResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
