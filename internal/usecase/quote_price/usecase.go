package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/config"
	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
)

// UseCase use case расчета стоимости бронирования
type UseCase struct {
	client   BookingAPIClient
	schedule config.ScheduleConfig
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingAPIClient, schedule config.ScheduleConfig, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		schedule: schedule,
		logger:   logger,
	}
}

// Execute считает стоимость интервала по тарифу комнаты.
// Длительность интервала определяется на оси операционного дня: конец,
// не превышающий начало, трактуется как время после полуночи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: room=%s interval=%s-%s peak=%v", req.RoomID, req.StartTime, req.EndTime, req.IsPeak)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тариф комнаты
	room, err := uc.client.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrRoomNotFound) {
			uc.logger.Warn("QuotePrice: room not found: %s", req.RoomID)
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("QuotePrice: failed to get room %s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Определяем длительность на оси операционного дня
	startMin, endMin, err := domain.IntervalRange(req.StartTime, req.EndTime, uc.schedule.Close())
	if err != nil {
		uc.logger.Warn("QuotePrice: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	durationMinutes := endMin - startMin

	// 4. Считаем стоимость
	total, err := domain.CalculatePrice(room.HalfHourRate, durationMinutes, req.IsPeak)
	if err != nil {
		uc.logger.Warn("QuotePrice: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	uc.logger.Info("QuotePrice: room=%s duration=%dm total=%.2f", req.RoomID, durationMinutes, total)

	return &Response{
		RoomID:          room.ID,
		RoomName:        room.Name,
		DurationMinutes: durationMinutes,
		TotalPrice:      total,
	}, nil
}
