package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alurfia/ALK-BookingService/internal/integrations/userapi"
)

type fakeClient struct {
	user *userapi.User
	err  error
}

func (c *fakeClient) GetUser(_ context.Context, userID string) (*userapi.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.user, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_GetProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeClient{user: &userapi.User{ID: "u1", Name: "Somchai", Email: "somchai@example.com"}}
		svc := NewService(client, noopLogger{})

		user, err := svc.GetProfile(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "Somchai", user.Name)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewService(&fakeClient{}, noopLogger{})

		_, err := svc.GetProfile(context.Background(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		client := &fakeClient{err: userapi.ErrUserNotFound}
		svc := NewService(client, noopLogger{})

		_, err := svc.GetProfile(context.Background(), "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("client error", func(t *testing.T) {
		client := &fakeClient{err: errors.New("connection refused")}
		svc := NewService(client, noopLogger{})

		_, err := svc.GetProfile(context.Background(), "u1")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
