package get_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	getSchedule "github.com/alurfia/ALK-BookingService/internal/usecase/get_schedule"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

type fakeUseCase struct {
	response *getSchedule.Response
	err      error

	lastReq *getSchedule.Request
}

func (uc *fakeUseCase) Execute(_ context.Context, req *getSchedule.Request) (*getSchedule.Response, error) {
	uc.lastReq = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.response, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{
		response: &getSchedule.Response{
			Date:      date,
			TimeSlots: []types.TimeString{"12:00", "12:30", "13:00"},
			Rooms: []*domain.Room{
				{ID: "room-1", Name: "VIP 1", HalfHourRate: 100, Color: "#ff0000"},
			},
			Slots: []*domain.Slot{
				{
					ID: "room-1-2026-03-12-12:00", RoomID: "room-1", Date: date,
					StartTime: "12:00", EndTime: "12:30",
					Status: domain.SlotAvailable, Price: 100,
				},
			},
		},
	}
	handler := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=2026-03-12", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2026-03-12", resp.Date)
	assert.Equal(t, []string{"12:00", "12:30", "13:00"}, resp.TimeSlots)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "available", resp.Slots[0].Status)
	assert.Equal(t, 100.0, resp.Slots[0].Price)

	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, date, useCase.lastReq.Date)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		useCaseErr error
		wantStatus int
	}{
		{
			name:       "missing date",
			url:        "/api/v1/schedule",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed date",
			url:        "/api/v1/schedule?date=12-03-2026",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "date in past",
			url:        "/api/v1/schedule?date=2026-03-12",
			useCaseErr: getSchedule.ErrInvalidDate,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "date too far in future",
			url:        "/api/v1/schedule?date=2026-03-12",
			useCaseErr: getSchedule.ErrDateTooFarInFuture,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ambiguous booking match",
			url:        "/api/v1/schedule?date=2026-03-12",
			useCaseErr: getSchedule.ErrAmbiguousBookingMatch,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "internal error",
			url:        "/api/v1/schedule?date=2026-03-12",
			useCaseErr: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.useCaseErr}, noopLogger{})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
