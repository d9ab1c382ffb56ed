package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/alurfia/ALK-BookingService/internal/domain"
	"github.com/alurfia/ALK-BookingService/pkg/types"
)

// Config конфигурация сервиса
// Загружается один раз при старте и далее только читается
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Schedule   ScheduleConfig   `toml:"schedule"`
	Payment    PaymentConfig    `toml:"payment"`
	Admin      AdminConfig      `toml:"admin"`
	BookingAPI IntegrationConfig `toml:"booking_api"`
	UserAPI    IntegrationConfig `toml:"user_api"`
	SlipVerify IntegrationConfig `toml:"slip_verify"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig операционные часы и сетка слотов
// Время закрытия после полуночи задается как время следующих суток ("01:00")
type ScheduleConfig struct {
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	MaxPrebookDays      int    `toml:"max_prebook_days"` // 0 = без ограничения
}

// Open возвращает валидированное время открытия
func (s *ScheduleConfig) Open() types.TimeString {
	return types.TimeString(s.OpenTime)
}

// Close возвращает валидированное время закрытия
func (s *ScheduleConfig) Close() types.TimeString {
	return types.TimeString(s.CloseTime)
}

// PaymentConfig реквизиты приема оплаты
type PaymentConfig struct {
	PromptPayNumber string `toml:"promptpay_number"`
	Currency        string `toml:"currency"`
}

// AdminConfig учетные данные администратора
type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
}

func validate(cfg *Config) error {
	if err := cfg.Schedule.Open().Validate(); err != nil {
		return fmt.Errorf("config: invalid schedule.open_time: %w", err)
	}
	if err := cfg.Schedule.Close().Validate(); err != nil {
		return fmt.Errorf("config: invalid schedule.close_time: %w", err)
	}
	if cfg.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		cfg.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: slot_duration_minutes must be in [%d, %d]",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if cfg.BookingAPI.URL == "" {
		return fmt.Errorf("config: booking_api.url is required")
	}
	return nil
}
