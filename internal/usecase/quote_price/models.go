package quote_price

import (
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Request модель запроса расчета стоимости
type Request struct {
	RoomID    string
	StartTime types.TimeString
	EndTime   types.TimeString
	IsPeak    bool
}

// Response модель ответа с расчетом
type Response struct {
	RoomID          string
	RoomName        string
	DurationMinutes int
	TotalPrice      float64
}
