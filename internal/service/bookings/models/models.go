package models

import (
	"errors"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	RoomID          *string    `json:"roomId,omitempty"`          // Фильтр по комнате (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"roomId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "20:00"
	EndTime      string  `json:"endTime"`   // "22:30"
	Status       string  `json:"status"`
	CustomerName *string `json:"customerName,omitempty"`
	TotalPrice   float64 `json:"totalPrice"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingRecord) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		Date:         b.Date.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Status:       string(b.Status),
		CustomerName: b.CustomerName,
		TotalPrice:   b.TotalPrice,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingRecord) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
