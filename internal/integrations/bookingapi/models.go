package bookingapi

import (
	"fmt"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Room модель комнаты из Booking API
type Room struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Capacity     string  `json:"capacity"`
	HalfHourRate float64 `json:"halfHourRate"`
	Color        string  `json:"color"`
}

// ToDomain конвертирует модель API в domain модель
func (r *Room) ToDomain() *domain.Room {
	return &domain.Room{
		ID:           r.ID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		HalfHourRate: r.HalfHourRate,
		Color:        r.Color,
	}
}

// Booking модель бронирования из Booking API
type Booking struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"roomId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "20:00"
	EndTime      string  `json:"endTime"`   // "22:30"
	Status       string  `json:"status"`
	CustomerName *string `json:"customerName,omitempty"`
	TotalPrice   float64 `json:"totalPrice"`
}

// ToDomain конвертирует модель API в domain модель с валидацией даты и времени
func (b *Booking) ToDomain() (*domain.BookingRecord, error) {
	date, err := time.Parse(domain.DateFormat, b.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s has invalid date %q", ErrInvalidResponse, b.ID, b.Date)
	}

	start, err := types.NewTimeStringFromString(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s has invalid startTime %q", ErrInvalidResponse, b.ID, b.StartTime)
	}

	end, err := types.NewTimeStringFromString(b.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s has invalid endTime %q", ErrInvalidResponse, b.ID, b.EndTime)
	}

	return &domain.BookingRecord{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Status:       domain.BookingStatus(b.Status),
		CustomerName: b.CustomerName,
		TotalPrice:   b.TotalPrice,
	}, nil
}

// CreateBookingRequest запрос на создание бронирования в Booking API
type CreateBookingRequest struct {
	RoomID          string  `json:"roomId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ErrorResponse модель ошибки от Booking API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
