package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// Источники каталога услуг
const (
	CatalogSourceAPI      = "api"
	CatalogSourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Env       string          `toml:"env"`
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	PetAPI    PetAPIConfig    `toml:"pet_api"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Checkin   CheckinConfig   `toml:"checkin"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// DatabaseConfig зеркало каталога услуг в postgres (только чтение)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Addr адрес redis в формате host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PetAPIConfig внешний graph API (услуги, бронирования)
type PetAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	Token   string `toml:"token"`   // сервисный токен, если запрос пришел без Authorization
}

type CatalogConfig struct {
	Source   string `toml:"source"`    // api | postgres
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

type CheckinConfig struct {
	SessionTTL    int    `toml:"session_ttl"`    // минуты
	SweepInterval int    `toml:"sweep_interval"` // секунды
	NightLocale   string `toml:"night_locale"`
}

type DashboardConfig struct {
	Timezone string `toml:"timezone"` // IANA, границы "сегодня" для выручки
}

// Location часовой пояс дашборда
func (d DashboardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(d.Timezone)
}

// Load читает конфигурацию из toml-файла.
// Секреты можно передать через переменные окружения или .env рядом с конфигом.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if cfg.Env != "production" {
		envPath := filepath.Join(filepath.Dir(path), ".env")
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.PetAPI.URL == "" {
		return errors.New("pet_api.url is required")
	}
	switch c.Catalog.Source {
	case CatalogSourceAPI, CatalogSourcePostgres:
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q",
			CatalogSourceAPI, CatalogSourcePostgres, c.Catalog.Source)
	}
	if c.Catalog.Source == CatalogSourcePostgres && c.Database.Host == "" {
		return errors.New("database.host is required for postgres catalog source")
	}
	if c.Checkin.SessionTTL <= 0 {
		return errors.New("checkin.session_ttl must be positive")
	}
	if _, err := c.Dashboard.Location(); err != nil {
		return fmt.Errorf("dashboard.timezone is invalid: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics.path is required when metrics are enabled")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "paws-checkin",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		PetAPI: PetAPIConfig{
			Timeout: 10,
		},
		Catalog: CatalogConfig{
			Source:   CatalogSourceAPI,
			CacheTTL: domain.DefaultCatalogTTL,
		},
		Checkin: CheckinConfig{
			SessionTTL:    int(domain.DefaultSessionTTL.Minutes()),
			SweepInterval: int(domain.DefaultSweepInterval.Seconds()),
			NightLocale:   domain.DefaultNightLocale,
		},
		Dashboard: DashboardConfig{Timezone: "UTC"},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PETAPI_URL"); v != "" {
		cfg.PetAPI.URL = v
	}
	if v := os.Getenv("PETAPI_TOKEN"); v != "" {
		cfg.PetAPI.Token = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}
