package get_user

import (
	"context"

	"github.com/alurfia/ALK-BookingService/internal/integrations/userapi"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*userapi.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
