package get_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alurfia/ALK-BookingService/internal/config"
	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

type fakeBookingClient struct {
	rooms    []*domain.Room
	bookings []*domain.BookingRecord

	roomsErr    error
	bookingsErr error

	lastFilter domain.BookingsFilter
}

func (c *fakeBookingClient) ListRooms(_ context.Context) ([]*domain.Room, error) {
	if c.roomsErr != nil {
		return nil, c.roomsErr
	}
	return c.rooms, nil
}

func (c *fakeBookingClient) ListBookings(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error) {
	c.lastFilter = filter
	if c.bookingsErr != nil {
		return nil, c.bookingsErr
	}
	return c.bookings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testScheduleConfig() config.ScheduleConfig {
	return config.ScheduleConfig{
		OpenTime:            "12:00",
		CloseTime:           "01:00",
		SlotDurationMinutes: 30,
		MaxPrebookDays:      30,
	}
}

func newTestUseCase(client *fakeBookingClient, now time.Time) *UseCase {
	uc := NewUseCase(client, testScheduleConfig(), noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func findSlot(t *testing.T, slots []*domain.Slot, roomID string, start types.TimeString) *domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.RoomID == roomID && s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot not found: room=%s start=%s", roomID, start)
	return nil
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	nextDate := date.AddDate(0, 0, 1)

	rooms := []*domain.Room{
		{ID: "room-1", Name: "VIP 1", Capacity: "8", HalfHourRate: 100, Color: "#ff0000"},
		{ID: "room-2", Name: "Standard", Capacity: "4", HalfHourRate: 60, Color: "#00ff00"},
	}

	client := &fakeBookingClient{
		rooms: rooms,
		bookings: []*domain.BookingRecord{
			{
				ID: "b1", RoomID: "room-1", Date: date,
				StartTime: "14:00", EndTime: "15:00",
				Status: domain.StatusBooked, TotalPrice: 200,
			},
			{
				ID: "b2", RoomID: "room-1", Date: date,
				StartTime: "23:30", EndTime: "00:30",
				Status: domain.StatusPending, TotalPrice: 250,
			},
			// Хвост смены за полночью, датированный следующими сутками
			{
				ID: "b3", RoomID: "room-2", Date: nextDate,
				StartTime: "00:00", EndTime: "00:30",
				Status: domain.StatusBooked, TotalPrice: 120,
			},
			// Завтрашняя дневная бронь сегодняшнюю сетку не трогает
			{
				ID: "b4", RoomID: "room-2", Date: nextDate,
				StartTime: "14:00", EndTime: "15:00",
				Status: domain.StatusBooked, TotalPrice: 120,
			},
			{
				ID: "b5", RoomID: "room-2", Date: date,
				StartTime: "16:00", EndTime: "17:00",
				Status: domain.StatusCancelled, TotalPrice: 240,
			},
		},
	}

	uc := newTestUseCase(client, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// 12:00 -> 01:00 с шагом 30 минут дает 26 меток, включая границу закрытия
	require.Len(t, resp.TimeSlots, 26)
	assert.Equal(t, types.TimeString("12:00"), resp.TimeSlots[0])
	assert.Equal(t, types.TimeString("01:00"), resp.TimeSlots[25])

	assert.Equal(t, rooms, resp.Rooms)
	assert.Len(t, resp.Slots, 2*26)

	// Фильтр бронирований захватывает следующий день ради хвостов за полночью
	require.NotNil(t, client.lastFilter.StartDate)
	require.NotNil(t, client.lastFilter.EndDate)
	assert.Equal(t, date, *client.lastFilter.StartDate)
	assert.Equal(t, nextDate, *client.lastFilter.EndDate)

	// Прямое попадание брони
	booked := findSlot(t, resp.Slots, "room-1", "14:00")
	assert.Equal(t, domain.SlotBooked, booked.Status)
	require.NotNil(t, booked.BookingID)
	assert.Equal(t, "b1", *booked.BookingID)
	assert.Equal(t, 200.0, booked.Price)

	secondHalf := findSlot(t, resp.Slots, "room-1", "14:30")
	assert.Equal(t, domain.SlotBooked, secondHalf.Status)

	// Бронь через полночь занимает оба слота
	beforeMidnight := findSlot(t, resp.Slots, "room-1", "23:30")
	assert.Equal(t, domain.SlotPending, beforeMidnight.Status)
	afterMidnight := findSlot(t, resp.Slots, "room-1", "00:00")
	assert.Equal(t, domain.SlotPending, afterMidnight.Status)
	require.NotNil(t, afterMidnight.BookingID)
	assert.Equal(t, "b2", *afterMidnight.BookingID)

	// Хвост, датированный следующими сутками, виден в сетке запрошенной даты
	carryover := findSlot(t, resp.Slots, "room-2", "00:00")
	assert.Equal(t, domain.SlotBooked, carryover.Status)
	require.NotNil(t, carryover.BookingID)
	assert.Equal(t, "b3", *carryover.BookingID)

	// Завтрашняя дневная бронь не отметилась
	tomorrowSlot := findSlot(t, resp.Slots, "room-2", "14:00")
	assert.Equal(t, domain.SlotAvailable, tomorrowSlot.Status)

	// Отмененная бронь не блокирует слот, цена свободной ячейки - тариф комнаты
	free := findSlot(t, resp.Slots, "room-2", "16:00")
	assert.Equal(t, domain.SlotAvailable, free.Status)
	assert.Nil(t, free.BookingID)
	assert.Equal(t, 60.0, free.Price)

	// Граница закрытия - нерабочая ячейка
	boundary := findSlot(t, resp.Slots, "room-1", "01:00")
	assert.Equal(t, domain.SlotClosed, boundary.Status)
	assert.Equal(t, types.TimeString(""), boundary.EndTime)

	assert.Equal(t, "room-1-2026-03-12-14:00", booked.ID)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	client := &fakeBookingClient{}

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{
			name:    "zero date",
			date:    time.Time{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "date in past",
			date:    now.AddDate(0, 0, -1),
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond prebook window",
			date:    now.AddDate(0, 0, 31),
			wantErr: ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(client, now)

			_, err := uc.Execute(context.Background(), &Request{Date: tt.date})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_Today(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	client := &fakeBookingClient{
		rooms: []*domain.Room{{ID: "room-1", Name: "VIP 1", HalfHourRate: 100}},
	}
	uc := newTestUseCase(client, now)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: today})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 26)
}

func TestUseCase_Execute_AmbiguousMatch(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	client := &fakeBookingClient{
		rooms: []*domain.Room{{ID: "room-1", Name: "VIP 1", HalfHourRate: 100}},
		bookings: []*domain.BookingRecord{
			{ID: "b1", RoomID: "room-1", Date: date, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusBooked},
			{ID: "b2", RoomID: "room-1", Date: date, StartTime: "14:30", EndTime: "15:30", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(client, now)

	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousBookingMatch)
}

func TestUseCase_Execute_IntegrationErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("rooms listing fails", func(t *testing.T) {
		client := &fakeBookingClient{roomsErr: errors.New("connection refused")}
		uc := newTestUseCase(client, now)

		_, err := uc.Execute(context.Background(), &Request{Date: date})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings listing fails", func(t *testing.T) {
		client := &fakeBookingClient{
			rooms:       []*domain.Room{{ID: "room-1"}},
			bookingsErr: errors.New("connection refused"),
		}
		uc := newTestUseCase(client, now)

		_, err := uc.Execute(context.Background(), &Request{Date: date})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
