package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	SlotService SlotServiceConfig `toml:"slotservice"`
	AuditLog    AuditLogConfig    `toml:"auditlog"`
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

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SlotServiceConfig настройки доступа к внешнему API доступности.
// FacilityTimezone - явный идентификатор часового пояса учреждения
// (например "Europe/Madrid"). Апстрим не передает метаданные пояса,
// поэтому пояс задается конфигурацией, а не локалью хоста.
type SlotServiceConfig struct {
	URL              string `toml:"url"`
	Username         string `toml:"username"`
	Password         string `toml:"password"`
	Timeout          int    `toml:"timeout"` // секунды
	FacilityTimezone string `toml:"facility_timezone"`
}

// AuditLogConfig настройки журнала попыток бронирования
type AuditLogConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN собирает строку подключения к postgres
func (c *AuditLogConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "dralia",
			Path:        "/metrics",
		},
		SlotService: SlotServiceConfig{
			Timeout:          15,
			FacilityTimezone: "UTC",
		},
		AuditLog: AuditLogConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.SlotService.URL == "" {
		return fmt.Errorf("config: slotservice.url is required")
	}
	if c.SlotService.FacilityTimezone == "" {
		return fmt.Errorf("config: slotservice.facility_timezone is required")
	}
	// Проверяем, что идентификатор пояса известен tzdata
	if _, err := time.LoadLocation(c.SlotService.FacilityTimezone); err != nil {
		return fmt.Errorf("config: slotservice.facility_timezone: %w", err)
	}
	if c.AuditLog.Enabled && c.AuditLog.Host == "" {
		return fmt.Errorf("config: auditlog.host is required when auditlog is enabled")
	}
	return nil
}
