package get_schedule

import (
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	getSchedule "github.com/alurfia/ALK-BookingService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date      string         `json:"date"`
	TimeSlots []string       `json:"timeSlots"`
	Rooms     []RoomInfo     `json:"rooms"`
	Slots     []ScheduleSlot `json:"slots"`
}

// RoomInfo модель комнаты в расписании
type RoomInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Capacity     string  `json:"capacity,omitempty"`
	HalfHourRate float64 `json:"halfHourRate"`
	Color        string  `json:"color,omitempty"`
}

// ScheduleSlot модель ячейки расписания
type ScheduleSlot struct {
	ID        string  `json:"id"`
	RoomID    string  `json:"roomId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime,omitempty"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
	BookingID *string `json:"bookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	timeSlots := make([]string, len(resp.TimeSlots))
	for i, label := range resp.TimeSlots {
		timeSlots[i] = label.String()
	}

	rooms := make([]RoomInfo, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomInfo{
			ID:           room.ID,
			Name:         room.Name,
			Capacity:     room.Capacity,
			HalfHourRate: room.HalfHourRate,
			Color:        room.Color,
		}
	}

	slots := make([]ScheduleSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = ScheduleSlot{
			ID:        slot.ID,
			RoomID:    slot.RoomID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    string(slot.Status),
			Price:     slot.Price,
			BookingID: slot.BookingID,
		}
	}

	return &ScheduleResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		TimeSlots: timeSlots,
		Rooms:     rooms,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getSchedule.Request{Date: date}, nil
}
