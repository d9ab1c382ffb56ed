package quote_price

import (
	"github.com/alurfia/ALK-BookingService/pkg/types"

	quotePrice "github.com/alurfia/ALK-BookingService/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	DurationMinutes int     `json:"durationMinutes"`
	TotalPrice      float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(roomID, startStr, endStr string, isPeak bool) *quotePrice.Request {
	return &quotePrice.Request{
		RoomID:    roomID,
		StartTime: types.TimeString(startStr),
		EndTime:   types.TimeString(endStr),
		IsPeak:    isPeak,
	}
}
