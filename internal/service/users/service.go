package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/integrations/userapi"
)

// Service сервис для работы с профилями пользователей поверх User API
type Service struct {
	client UserAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(client UserAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetProfile получает профиль пользователя по ID
func (s *Service) GetProfile(ctx context.Context, userID string) (*userapi.User, error) {
	s.logger.Info("GetProfile: fetching user id=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrInvalidInput)
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userapi.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: client error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - client error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfile: successfully fetched user id=%s", userID)
	return user, nil
}
