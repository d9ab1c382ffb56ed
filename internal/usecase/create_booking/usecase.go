package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/config"
	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
	"github.com/alurfia/ALK-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	client       BookingAPIClient
	schedule     config.ScheduleConfig
	payment      config.PaymentConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BookingAPIClient,
	schedule config.ScheduleConfig,
	payment config.PaymentConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		schedule:     schedule,
		payment:      payment,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Стоимость считается на сервере по тарифу комнаты: цена из запроса
// клиента не принимается. Запись создается в статусе pending и
// подтверждается после проверки платежного слипа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, interval=%s-%s",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.schedule.MaxPrebookDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что интервал выровнен по сетке и лежит в операционных часах
	startMin, endMin, err := validateInterval(
		req.StartTime, req.EndTime,
		uc.schedule.Open(), uc.schedule.Close(),
		uc.schedule.SlotDurationMinutes,
	)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}
	durationMinutes := endMin - startMin

	// 5. Сегодняшний слот не должен быть уже начавшимся
	if err := validateBookingTime(req.Date, startMin, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем комнату и ее тариф
	room, err := uc.client.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room not found: %s", req.RoomID)
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("CreateBooking: failed to get room %s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 7. Получаем активные бронирования комнаты на дату и следующий день
	nextDate := req.Date.AddDate(0, 0, 1)
	bookings, err := uc.client.ListBookings(ctx, domain.BookingsFilter{
		RoomID:    ptr.Ptr(req.RoomID),
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(nextDate),
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 8. Проверяем доступность интервала
	conflict, err := hasConflict(req.Date, startMin, endMin, bookings, uc.schedule.Close())
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check availability: %v", err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	if conflict {
		uc.logger.Warn("CreateBooking: slot not available: room=%s %s-%s", req.RoomID, req.StartTime, req.EndTime)
		return nil, ErrSlotNotAvailable
	}

	// 9. Считаем стоимость на сервере
	totalPrice, err := domain.CalculatePrice(room.HalfHourRate, durationMinutes, req.IsPeak)
	if err != nil {
		uc.logger.Error("CreateBooking: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
	}

	// 10. Создаем бронирование
	created, err := uc.client.CreateBooking(ctx, &bookingapi.CreateBookingRequest{
		RoomID:          req.RoomID,
		Date:            req.Date.Format(domain.DateFormat),
		StartTime:       req.StartTime.String(),
		EndTime:         req.EndTime.String(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      totalPrice,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		if errors.Is(err, bookingapi.ErrConflict) {
			// Интервал заняли между проверкой и созданием
			uc.logger.Warn("CreateBooking: conflict on create: room=%s %s-%s", req.RoomID, req.StartTime, req.EndTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s total=%.2f", created.ID, created.TotalPrice)

	return &Response{
		ID:              created.ID,
		RoomID:          created.RoomID,
		RoomName:        room.Name,
		Date:            created.Date,
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		DurationMinutes: durationMinutes,
		Status:          string(created.Status),
		TotalPrice:      created.TotalPrice,
		Payment: PaymentDetails{
			PromptPayNumber: uc.payment.PromptPayNumber,
			Amount:          created.TotalPrice,
			Currency:        uc.payment.Currency,
		},
	}, nil
}
