package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/admin_login"
	createBookingHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/create_booking"
	getAdminBookingsHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/get_admin_bookings"
	getBookingHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/get_schedule"
	getUserHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/get_user"
	quotePriceHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/quote_price"
	updateBookingStatusHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/update_booking_status"
	verifySlipHandler "github.com/alurfia/ALK-BookingService/internal/api/handlers/verify_slip"
	"github.com/alurfia/ALK-BookingService/internal/api/middleware"
	"github.com/alurfia/ALK-BookingService/internal/config"
	bookingAPIClient "github.com/alurfia/ALK-BookingService/internal/integrations/bookingapi"
	slipVerifyClient "github.com/alurfia/ALK-BookingService/internal/integrations/slipverify"
	userAPIClient "github.com/alurfia/ALK-BookingService/internal/integrations/userapi"
	bookingsService "github.com/alurfia/ALK-BookingService/internal/service/bookings"
	usersService "github.com/alurfia/ALK-BookingService/internal/service/users"
	createBookingUC "github.com/alurfia/ALK-BookingService/internal/usecase/create_booking"
	getScheduleUC "github.com/alurfia/ALK-BookingService/internal/usecase/get_schedule"
	quotePriceUC "github.com/alurfia/ALK-BookingService/internal/usecase/quote_price"
	verifySlipUC "github.com/alurfia/ALK-BookingService/internal/usecase/verify_slip"
	"github.com/alurfia/ALK-BookingService/pkg/logger"
	"github.com/alurfia/ALK-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ALK-BookingService...")
	log.Info("Configuration loaded from config.toml")
	log.Info("Operating hours %s-%s, slot duration %d minutes",
		cfg.Schedule.OpenTime, cfg.Schedule.CloseTime, cfg.Schedule.SlotDurationMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	bookingClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		cfg.BookingAPI.APIKey,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	userClient := userAPIClient.NewClient(
		cfg.UserAPI.URL,
		cfg.UserAPI.APIKey,
		time.Duration(cfg.UserAPI.Timeout)*time.Second,
		log,
	)
	slipClient := slipVerifyClient.NewClient(
		cfg.SlipVerify.URL,
		cfg.SlipVerify.APIKey,
		time.Duration(cfg.SlipVerify.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s, UserAPI=%s, SlipVerify=%s)",
		cfg.BookingAPI.URL, cfg.UserAPI.URL, cfg.SlipVerify.URL)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingClient, log)
	userSvc := usersService.NewService(userClient, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(bookingClient, cfg.Schedule, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(bookingClient, cfg.Schedule, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingClient, cfg.Schedule, cfg.Payment, log)
	verifySlipUseCase := verifySlipUC.NewUseCase(bookingClient, slipClient, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	verifySlip := verifySlipHandler.NewHandler(verifySlipUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.Admin.Username, cfg.Admin.Password, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка расписания на дату
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Расчет стоимости интервала
	api.HandleFunc("/quote", quotePrice.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Проверка платежного слипа и подтверждение бронирования
	api.HandleFunc("/bookings/{bookingId}/verify-slip", verifySlip.Handle).Methods(http.MethodPost)

	// Профиль пользователя
	api.HandleFunc("/user", getUser.Handle).Methods(http.MethodGet)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют учетные данные администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Username, cfg.Admin.Password))

	// Список бронирований с фильтрацией
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Подтверждение или отмена бронирования
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
