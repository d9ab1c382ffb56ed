package domain

import (
	"time"

	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingRecord represents a reserved interval as reported by the Booking API.
// Date is the calendar date the interval starts on; an interval whose end time
// reads earlier than its start crosses midnight into the next calendar day.
// Records are read-only snapshots for the query date.
type BookingRecord struct {
	ID           string
	RoomID       string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       BookingStatus
	CustomerName *string
	TotalPrice   float64
}

// IsActive returns true if the booking still blocks its interval
func (b *BookingRecord) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *BookingRecord) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса
// pending -> booked (подтверждение оплаты), pending/booked -> cancelled
func (b *BookingRecord) CanTransitionTo(status BookingStatus) bool {
	switch status {
	case StatusBooked:
		return b.Status == StatusPending
	case StatusCancelled:
		return b.Status == StatusPending || b.Status == StatusBooked
	default:
		return false
	}
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	RoomID          *string        // Фильтр по комнате (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusBooked,
	StatusCancelled,
}
