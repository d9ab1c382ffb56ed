package quote_price

import (
	"context"

	"github.com/alurfia/ALK-BookingService/internal/domain"
)

// BookingAPIClient интерфейс клиента Booking API
type BookingAPIClient interface {
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
