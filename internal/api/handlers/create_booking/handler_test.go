package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/alurfia/ALK-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	response *createBooking.Response
	err      error

	lastReq *createBooking.Request
}

func (uc *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
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

const validBody = `{
	"roomId": "room-1",
	"date": "2026-03-12",
	"startTime": "14:00",
	"endTime": "16:30",
	"customerName": "Somchai"
}`

func TestHandler_Handle(t *testing.T) {
	useCase := &fakeUseCase{
		response: &createBooking.Response{
			ID:              "b-new",
			RoomID:          "room-1",
			RoomName:        "VIP 1",
			Date:            time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			StartTime:       "14:00",
			EndTime:         "16:30",
			DurationMinutes: 150,
			Status:          "pending",
			TotalPrice:      575,
			Payment: createBooking.PaymentDetails{
				PromptPayNumber: "0945945564",
				Amount:          575,
				Currency:        "THB",
			},
		},
	}
	handler := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "b-new", resp.ID)
	assert.Equal(t, "2026-03-12", resp.Date)
	assert.Equal(t, 575.0, resp.TotalPrice)
	assert.Equal(t, "0945945564", resp.Payment.PromptPayNumber)

	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, "room-1", useCase.lastReq.RoomID)
	assert.Equal(t, "Somchai", useCase.lastReq.CustomerName)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       `{"roomId": }`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"roomId": "room-1", "totalPrice": 1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed date",
			body:       `{"roomId": "room-1", "date": "12.03.2026", "startTime": "14:00", "endTime": "15:00"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "room not found",
			body:       validBody,
			useCaseErr: createBooking.ErrRoomNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid time slot",
			body:       validBody,
			useCaseErr: createBooking.ErrInvalidTimeSlot,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slot not available",
			body:       validBody,
			useCaseErr: createBooking.ErrSlotNotAvailable,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "internal error",
			body:       validBody,
			useCaseErr: createBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.useCaseErr}, noopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
