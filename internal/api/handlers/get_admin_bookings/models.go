package get_admin_bookings

import (
	"net/url"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/internal/service/bookings/models"
	"github.com/alurfia/ALK-BookingService/pkg/ptr"
)

// ToServiceRequest создает запрос сервиса из query параметров
//
// Поддерживаемые параметры:
// - date: бронирования на конкретную дату (YYYY-MM-DD)
// - roomId: фильтр по комнате
// - status: фильтр по статусу
// - includeInactive: включить отмененные бронирования
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if roomID := query.Get("roomId"); roomID != "" {
		req.RoomID = ptr.Ptr(roomID)
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(date)
		req.EndDate = ptr.Ptr(date)
	}

	return req, nil
}
