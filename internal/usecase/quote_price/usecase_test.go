package quote_price

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alurfia/ALK-BookingService/internal/config"
	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

type fakeBookingClient struct {
	room *domain.Room
	err  error
}

func (c *fakeBookingClient) GetRoom(_ context.Context, roomID string) (*domain.Room, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.room, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(client *fakeBookingClient) *UseCase {
	schedule := config.ScheduleConfig{
		OpenTime:            "12:00",
		CloseTime:           "01:00",
		SlotDurationMinutes: 30,
	}
	return NewUseCase(client, schedule, noopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	client := &fakeBookingClient{
		room: &domain.Room{ID: "room-1", Name: "VIP 1", HalfHourRate: 100},
	}
	uc := newTestUseCase(client)

	tests := []struct {
		name         string
		start, end   string
		isPeak       bool
		wantDuration int
		wantTotal    float64
	}{
		{
			name:  "half hour is the base rate",
			start: "14:00", end: "14:30",
			wantDuration: 30,
			wantTotal:    100,
		},
		{
			name:  "one hour without discount",
			start: "14:00", end: "15:00",
			wantDuration: 60,
			wantTotal:    200,
		},
		{
			name:  "two and a half hours with surcharge and discount",
			start: "14:00", end: "16:30",
			wantDuration: 150,
			wantTotal:    575,
		},
		{
			name:  "overnight interval rolls past midnight",
			start: "23:30", end: "00:30",
			wantDuration: 60,
			wantTotal:    200,
		},
		{
			name:  "peak multiplier applies to total",
			start: "14:00", end: "15:00",
			isPeak:       true,
			wantDuration: 60,
			wantTotal:    300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				RoomID:    "room-1",
				StartTime: types.TimeString(tt.start),
				EndTime:   types.TimeString(tt.end),
				IsPeak:    tt.isPeak,
			})

			require.NoError(t, err)
			assert.Equal(t, "room-1", resp.RoomID)
			assert.Equal(t, "VIP 1", resp.RoomName)
			assert.Equal(t, tt.wantDuration, resp.DurationMinutes)
			assert.Equal(t, tt.wantTotal, resp.TotalPrice)
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	client := &fakeBookingClient{
		room: &domain.Room{ID: "room-1", Name: "VIP 1", HalfHourRate: 100},
	}
	uc := newTestUseCase(client)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing room ID",
			req:     &Request{StartTime: "14:00", EndTime: "15:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			req:     &Request{RoomID: "room-1", StartTime: "2pm", EndTime: "15:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed end time",
			req:     &Request{RoomID: "room-1", StartTime: "14:00", EndTime: "25:00"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	client := &fakeBookingClient{err: bookingapi.ErrRoomNotFound}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    "missing",
		StartTime: "14:00",
		EndTime:   "15:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_IntegrationError(t *testing.T) {
	client := &fakeBookingClient{err: errors.New("connection refused")}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    "room-1",
		StartTime: "14:00",
		EndTime:   "15:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
