package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

type Handler struct {
	username string
	password string
	logger   Logger
}

func NewHandler(username, password string, logger Logger) *Handler {
	return &Handler{
		username: username,
		password: password,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1

	if !userMatch || !passMatch {
		h.logger.Warn("POST /admin/login - Invalid credentials: username=%s", req.Username)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Success:  true,
		Username: req.Username,
	})
}
