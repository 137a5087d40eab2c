package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// Переменные окружения с секретами, перекрывают значения из файла
const (
	envDBPassword    = "BOOKING_DB_PASSWORD"
	envJWTSecret     = "BOOKING_JWT_SECRET"
	envRedisPassword = "BOOKING_REDIS_PASSWORD"
	envRabbitMQURL   = "BOOKING_RABBITMQ_URL"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	Schedule ScheduleConfig `toml:"schedule"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleConfig рабочие часы по дням недели и список дат, доступных для бронирования
type ScheduleConfig struct {
	Timezone string          `toml:"timezone"`
	Dates    []string        `toml:"dates"`
	Hours    []WeekdayWindow `toml:"hours"`
}

// WeekdayWindow окно работы для набора дней недели
type WeekdayWindow struct {
	Weekdays []string `toml:"weekdays"`
	Start    string   `toml:"start"`
	End      string   `toml:"end"`
}

// Load читает TOML файл, подхватывает .env и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию, повторяющие расписание сезона 2025
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "excursion-booking",
		},
		Redis:    RedisConfig{Addr: "localhost:6379", TTL: 60},
		RabbitMQ: RabbitMQConfig{Timeout: 5},
		Schedule: ScheduleConfig{
			Timezone: "America/Chicago",
			Dates:    []string{"2025-06-21", "2025-06-22", "2025-06-23", "2025-06-24"},
			Hours: []WeekdayWindow{
				{Weekdays: []string{"Saturday"}, Start: "14:00", End: "18:00"},
				{Weekdays: []string{"Sunday", "Monday", "Tuesday"}, Start: "13:00", End: "17:00"},
			},
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(envRabbitMQURL); v != "" {
		c.RabbitMQ.URL = v
	}
}

// Validate проверяет обязательные поля и расписание
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, envJWTSecret)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if _, err := c.Schedule.Build(); err != nil {
		return err
	}
	return nil
}

// ScheduleRules разобранное расписание
type ScheduleRules struct {
	Location *time.Location
	Dates    []time.Time
	Weekly   map[time.Weekday]domain.OperatingWindow
}

// Build разбирает часовой пояс, даты и окна по дням недели
func (s ScheduleConfig) Build() (*ScheduleRules, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}

	rules := &ScheduleRules{
		Location: loc,
		Dates:    make([]time.Time, 0, len(s.Dates)),
		Weekly:   make(map[time.Weekday]domain.OperatingWindow),
	}

	for _, raw := range s.Dates {
		d, err := time.ParseInLocation(domain.DateFormat, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule.dates %q: %v", ErrInvalidConfig, raw, err)
		}
		rules.Dates = append(rules.Dates, d)
	}

	for _, h := range s.Hours {
		window, err := parseWindow(h.Start, h.End)
		if err != nil {
			return nil, err
		}
		for _, name := range h.Weekdays {
			wd, err := parseWeekday(name)
			if err != nil {
				return nil, err
			}
			if _, dup := rules.Weekly[wd]; dup {
				return nil, fmt.Errorf("%w: schedule.hours: %s listed twice", ErrInvalidConfig, wd)
			}
			rules.Weekly[wd] = window
		}
	}

	return rules, nil
}

func parseWindow(start, end string) (domain.OperatingWindow, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("%w: schedule.hours start: %v", ErrInvalidConfig, err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("%w: schedule.hours end: %v", ErrInvalidConfig, err)
	}

	window := domain.OperatingWindow{Start: s, End: e}
	if err := window.Validate(); err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("%w: schedule.hours: %v", ErrInvalidConfig, err)
	}
	return window, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), strings.TrimSpace(name)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, name)
}
