package get_schedule

import (
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Request модель запроса расписания на дату
type Request struct {
	Date time.Time // Дата расписания (без времени)
}

// Response модель ответа с сеткой расписания
// Последняя метка в TimeSlots - граница закрытия: ячейки по ней имеют статус
// closed, публичный рендер может ее обрезать
type Response struct {
	Date      time.Time
	TimeSlots []types.TimeString
	Rooms     []*domain.Room
	Slots     []*domain.Slot
}
