package bookings

import (
	"context"

	"github.com/alurfia/ALK-BookingService/internal/domain"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error)
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, reason *string) (*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
