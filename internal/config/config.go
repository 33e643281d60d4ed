package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server" validate:"required"`
	Database     DatabaseConfig     `toml:"database" validate:"required"`
	Logs         LogsConfig         `toml:"logs" validate:"required"`
	Metrics      MetricsConfig      `toml:"metrics"`
	App          AppConfig          `toml:"app" validate:"required"`
	Scheduler    SchedulerConfig    `toml:"scheduler"`
	Reservations ReservationsConfig `toml:"reservations" validate:"required"`
	RateLimit    RateLimitConfig    `toml:"ratelimit"`
	CORS         CORSConfig         `toml:"cors"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=1"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=1"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// AppConfig параметры площадки
type AppConfig struct {
	// Timezone часовой пояс площадки, в нем считаются "сегодня" и истекшие бронирования
	Timezone string `toml:"timezone" validate:"required"`
}

// Location загружает часовой пояс площадки
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// SchedulerConfig параметры фоновых задач (интервалы в часах)
type SchedulerConfig struct {
	Enabled                 bool `toml:"enabled"`
	GenerationIntervalHours int  `toml:"generation_interval_hours" validate:"required_if=Enabled true,omitempty,min=1"`
	DaysToGenerate          int  `toml:"days_to_generate" validate:"omitempty,min=1,max=366"`
	RetentionIntervalHours  int  `toml:"retention_interval_hours" validate:"required_if=Enabled true,omitempty,min=1"`
	RetentionMonths         int  `toml:"retention_months" validate:"omitempty,min=1"`
}

// GenerationInterval период генерации слотов
func (s SchedulerConfig) GenerationInterval() time.Duration {
	return time.Duration(s.GenerationIntervalHours) * time.Hour
}

// RetentionInterval период очистки старых слотов
func (s SchedulerConfig) RetentionInterval() time.Duration {
	return time.Duration(s.RetentionIntervalHours) * time.Hour
}

// ReservationsConfig параметры бронирований
type ReservationsConfig struct {
	DefaultPassword      string `toml:"default_password" validate:"required"`
	PlaceholderPhone     string `toml:"placeholder_phone" validate:"required"`
	AllowReopenCancelled bool   `toml:"allow_reopen_cancelled"`
}

// RateLimitConfig ограничение частоты создания бронирований на клиента
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps" validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst   int     `toml:"burst" validate:"required_if=Enabled true,omitempty,min=1"`
}

// CORSConfig разрешенные источники фронтенда и админки
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "courts",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "court_service",
		},
		App: AppConfig{
			Timezone: "Asia/Taipei",
		},
		Scheduler: SchedulerConfig{
			GenerationIntervalHours: 24 * 7,
			DaysToGenerate:          domain.DefaultDaysToGenerate,
			RetentionIntervalHours:  24 * 30,
			RetentionMonths:         domain.DefaultRetentionMonths,
		},
		Reservations: ReservationsConfig{
			DefaultPassword:      domain.DefaultBookingPassword,
			PlaceholderPhone:     "-",
			AllowReopenCancelled: true,
		},
		RateLimit: RateLimitConfig{
			RPS:   1,
			Burst: 5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию,
// применяет переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию по тегам validate
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

// applyEnv переопределяет секреты и адреса из переменных окружения
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("DB_HOST"); ok && v != "" {
		cfg.Database.Host = v
	}
	if v, ok := os.LookupEnv("HTTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}
