package users

import (
	"context"

	"github.com/alurfia/ALK-BookingService/internal/integrations/userapi"
)

// UserAPIClient интерфейс клиента User API
type UserAPIClient interface {
	GetUser(ctx context.Context, userID string) (*userapi.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
