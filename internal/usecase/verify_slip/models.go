package verify_slip

import (
	"io"
	"time"

	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Request модель запроса проверки платежного слипа
type Request struct {
	BookingID string
	Filename  string
	File      io.Reader
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	BookingID  string
	RoomID     string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string
	TotalPrice float64

	// Данные распознанного платежа
	TransRef   string
	PaidAmount float64
	PaidAt     time.Time
}
