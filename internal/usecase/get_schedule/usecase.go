package get_schedule

import (
	"context"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/config"
	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/ptr"
)

// UseCase use case построения сетки расписания на дату
type UseCase struct {
	client       BookingAPIClient
	schedule     config.ScheduleConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingAPIClient, schedule config.ScheduleConfig, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит расписание: для каждой пары (комната, слот) ровно один
// статус и цена. Либо возвращается полная консистентная сетка, либо ошибка -
// частичного результата нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.schedule.MaxPrebookDays); err != nil {
		uc.logger.Warn("GetSchedule: date validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем справочник комнат
	rooms, err := uc.client.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на дату запроса и следующий день:
	// бронирования, ушедшие за полночь, датированы следующими сутками
	nextDate := req.Date.AddDate(0, 0, 1)
	bookings, err := uc.client.ListBookings(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(nextDate),
	})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку меток операционного дня
	labels, err := domain.GenerateSlots(uc.schedule.Open(), uc.schedule.Close(), uc.schedule.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Определяем статус каждой ячейки
	byRoom := indexBookingsByRoom(bookings)
	dateStr := req.Date.Format(domain.DateFormat)

	slots := make([]*domain.Slot, 0, len(rooms)*len(labels))
	for _, room := range rooms {
		roomBookings := byRoom[room.ID]

		for i, label := range labels {
			cell := &domain.Slot{
				ID:        fmt.Sprintf("%s-%s-%s", room.ID, dateStr, label),
				RoomID:    room.ID,
				Date:      req.Date,
				StartTime: label,
			}

			// Последняя метка - граница закрытия, а не бронируемый слот
			if i == len(labels)-1 {
				cell.Status = domain.SlotClosed
				slots = append(slots, cell)
				continue
			}

			cell.EndTime = labels[i+1]

			status, matchedBooking, err := resolveSlot(req.Date, label, labels[i+1], roomBookings, uc.schedule.Close())
			if err != nil {
				uc.logger.Error("GetSchedule: failed to resolve slot room=%s slot=%s: %v", room.ID, label, err)
				return nil, err
			}

			cell.Status = status
			if matchedBooking != nil {
				cell.BookingID = ptr.Ptr(matchedBooking.ID)
				cell.Price = matchedBooking.TotalPrice
			} else {
				// Свободная ячейка показывает цену получасового слота
				cell.Price = room.HalfHourRate
			}

			slots = append(slots, cell)
		}
	}

	uc.logger.Info("GetSchedule: resolved %d cells for date=%s (rooms=%d, labels=%d)",
		len(slots), dateStr, len(rooms), len(labels))

	return &Response{
		Date:      req.Date,
		TimeSlots: labels,
		Rooms:     rooms,
		Slots:     slots,
	}, nil
}
