package create_booking

import (
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	createBooking "github.com/alurfia/ALK-BookingService/internal/usecase/create_booking"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          string  `json:"roomId"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "20:00"
	EndTime         string  `json:"endTime"`   // "22:30"
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail,omitempty"`
	CustomerPhone   string  `json:"customerPhone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	IsPeak          bool    `json:"isPeak,omitempty"`
}

// PaymentInfo реквизиты оплаты в HTTP ответе
type PaymentInfo struct {
	PromptPayNumber string  `json:"promptPayNumber"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string      `json:"id"`
	RoomID          string      `json:"roomId"`
	RoomName        string      `json:"roomName"`
	Date            string      `json:"date"`
	StartTime       string      `json:"startTime"`
	EndTime         string      `json:"endTime"`
	DurationMinutes int         `json:"durationMinutes"`
	Status          string      `json:"status"`
	TotalPrice      float64     `json:"totalPrice"`
	Payment         PaymentInfo `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:          r.RoomID,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		SpecialRequests: r.SpecialRequests,
		IsPeak:          r.IsPeak,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		Payment: PaymentInfo{
			PromptPayNumber: resp.Payment.PromptPayNumber,
			Amount:          resp.Payment.Amount,
			Currency:        resp.Payment.Currency,
		},
	}
}
