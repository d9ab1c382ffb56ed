package domain

import (
	"time"

	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// SlotStatus derived status of a (room, slot) cell in the schedule grid
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotBooked    SlotStatus = "booked"
	SlotCancelled SlotStatus = "cancelled"
	SlotClosed    SlotStatus = "closed"
)

// Slot ячейка расписания: (комната, дата, время начала) со статусом и ценой
// Не персистится - пересчитывается на каждый запрос расписания
type Slot struct {
	ID        string
	RoomID    string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
	Price     float64
	BookingID *string // ID бронирования, занявшего слот (если есть)
}

// IsBookable returns true if the slot can be selected for a new booking
func (s *Slot) IsBookable() bool {
	return s.Status == SlotAvailable
}

// Quote результат расчета цены для пары начало/конец
// Эфемерный: пересчитывается на каждое изменение выбора
type Quote struct {
	DurationMinutes int
	TotalPrice      float64
}
