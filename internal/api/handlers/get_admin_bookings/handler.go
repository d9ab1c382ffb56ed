package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	"github.com/alurfia/ALK-BookingService/internal/service/bookings"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: date (YYYY-MM-DD), roomId, status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
