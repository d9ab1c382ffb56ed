package get_user

import (
	"errors"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
	"github.com/alurfia/ALK-BookingService/internal/service/users"
)

const (
	msgMissingUserID = "ID пользователя обязателен"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/user
// Query params: userId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.logger.Warn("GET /user - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("GET /user - Invalid user ID: %v", err)
			handlers.RespondBadRequest(w, msgMissingUserID)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /user - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /user - Failed to get user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /user - User retrieved successfully: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
