package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
	"github.com/alurfia/ALK-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями поверх Booking API
type Service struct {
	client BookingAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking ID is required", ErrInvalidInput)
	}

	booking, err := s.client.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: client error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - client error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования комнаты: указать RoomID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только ожидающие оплаты: указать Status = "pending"
// - Включая отмененные: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%s", *req.RoomID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.client.ListBookings(ctx, filter)
	if err != nil {
		s.logger.Error("List: client error: %v", err)
		return nil, fmt.Errorf("%w: List - client error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования с проверкой допустимости перехода
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking ID is required", ErrInvalidInput)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.client.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: client error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - client error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: booking id=%s cannot transition %s -> %s",
			bookingID, booking.Status, newStatus)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	updated, err := s.client.UpdateBookingStatus(ctx, bookingID, newStatus, req.Reason)
	if err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: client error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - client error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}
