package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Config is the full service configuration, loaded from config.toml.
type Config struct {
	Server         Server         `toml:"server"`
	Logs           Logs           `toml:"logs"`
	Database       Database       `toml:"database"`
	Metrics        Metrics        `toml:"metrics"`
	CatalogService CatalogService `toml:"catalog_service"`
	Schedule       Schedule       `toml:"schedule"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Database struct {
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

// DSN returns the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CatalogService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Schedule configures the business window. It is the single source of truth
// for working hours: validation, slot generation and calendar geometry all
// receive the window built here.
type Schedule struct {
	StartHour   int `toml:"start_hour"`
	StartMinute int `toml:"start_minute"`
	EndHour     int `toml:"end_hour"`
	EndMinute   int `toml:"end_minute"`
}

// BusinessWindow converts the schedule section into the domain window,
// applying the defaults when the section is absent.
func (s Schedule) BusinessWindow() (domain.BusinessWindow, error) {
	if s.StartHour == 0 && s.StartMinute == 0 && s.EndHour == 0 && s.EndMinute == 0 {
		return domain.DefaultBusinessWindow(), nil
	}
	window := domain.BusinessWindow{
		Start: domain.TimeSlot{Hour: s.StartHour, Minute: s.StartMinute},
		End:   domain.TimeSlot{Hour: s.EndHour, Minute: s.EndMinute},
	}
	if err := window.Validate(); err != nil {
		return domain.BusinessWindow{}, err
	}
	return window, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "salon-service"
	}
	if cfg.CatalogService.Timeout == 0 {
		cfg.CatalogService.Timeout = 5
	}

	if _, err := cfg.Schedule.BusinessWindow(); err != nil {
		return nil, fmt.Errorf("config: invalid schedule section: %w", err)
	}

	return &cfg, nil
}
