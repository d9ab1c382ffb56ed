package create_booking

import (
	"context"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error)
	CreateBooking(ctx context.Context, createReq *bookingapi.CreateBookingRequest) (*domain.BookingRecord, error)
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
