package quote_price

import (
	"errors"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	quotePrice "github.com/alurfia/ALK-BookingService/internal/usecase/quote_price"
)

const (
	msgMissingRoomID     = "ID комнаты обязателен"
	msgMissingTime       = "время начала и конца обязательны"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается HH:MM"
	msgRoomNotFound      = "комната не найдена"
	msgInvalidInterval   = "некорректный интервал бронирования"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote
// Query params: roomId (required), start (required, HH:MM), end (required, HH:MM), peak (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("roomId")
	if roomID == "" {
		h.logger.Warn("GET /quote - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /quote - Missing start or end time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	isPeak := query.Get("peak") == "true"

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(roomID, startStr, endStr, isPeak))
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		case errors.Is(err, quotePrice.ErrRoomNotFound):
			h.logger.Warn("GET /quote - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quotePrice.ErrInvalidInterval):
			h.logger.Warn("GET /quote - Invalid interval: room_id=%s, start=%s, end=%s", roomID, startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /quote - Failed to quote price: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quote - Price quoted successfully: room_id=%s, duration=%d, total=%.2f",
		roomID, result.DurationMinutes, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
