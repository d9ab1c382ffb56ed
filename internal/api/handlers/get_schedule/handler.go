package get_schedule

import (
	"errors"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	getSchedule "github.com/alurfia/ALK-BookingService/internal/usecase/get_schedule"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast       = "дата уже прошла"
	msgDateTooFar       = "расписание на эту дату еще не опубликовано"
	msgScheduleConflict = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getSchedule.ErrDateTooFarInFuture):
			h.logger.Warn("GET /schedule - Date too far in future: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getSchedule.ErrAmbiguousBookingMatch):
			// Нарушение целостности данных на стороне Booking API
			h.logger.Error("GET /schedule - Ambiguous booking match: date=%s, error=%v", dateStr, err)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule - Schedule retrieved successfully: date=%s, rooms=%d, cells=%d",
		dateStr, len(result.Rooms), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
