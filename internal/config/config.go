// Package config loads the service configuration from config.toml.
// Credentials can be overridden from the environment so the file itself
// stays free of secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Mailer      MailerConfig      `toml:"mailer"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
	Security    SecurityConfig    `toml:"security"`
	ServiceArea ServiceAreaConfig `toml:"service_area"`
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

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type MailerConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

type RateLimitConfig struct {
	Booking       LimitConfig `toml:"booking"`
	Contact       LimitConfig `toml:"contact"`
	PurgeInterval int         `toml:"purge_interval"`
}

type LimitConfig struct {
	Limit  int `toml:"limit"`
	Window int `toml:"window"` // seconds
}

type SecurityConfig struct {
	CsrfSecret string `toml:"csrf_secret"`
}

type ServiceAreaConfig struct {
	Rounds []RoundConfig `toml:"rounds"`
}

// RoundConfig is one scheduled round entry, e.g. outward="BA16",
// day="Tuesday", week=3
type RoundConfig struct {
	Outward string `toml:"outward"`
	Day     string `toml:"day"`
	Week    int    `toml:"week"`
}

// DSN builds the postgres connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ToRounds converts the configured round entries into the classifier table.
// An empty section means the built-in default table is used.
func (s *ServiceAreaConfig) ToRounds() (map[string]domain.Round, error) {
	if len(s.Rounds) == 0 {
		return nil, nil
	}

	rounds := make(map[string]domain.Round, len(s.Rounds))
	for _, entry := range s.Rounds {
		day, ok := parseWeekday(entry.Day)
		if !ok {
			return nil, fmt.Errorf("service_area: unknown day %q for round %s", entry.Day, entry.Outward)
		}
		if entry.Week < 1 || entry.Week > domain.RotationWeeks {
			return nil, fmt.Errorf("service_area: week %d out of range for round %s", entry.Week, entry.Outward)
		}
		rounds[entry.Outward] = domain.Round{Day: day, Week: entry.Week}
	}
	return rounds, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, true
		}
	}
	return 0, false
}

// Load reads the config file and applies environment overrides
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Secrets from the environment win over the file.
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("MAILER_API_KEY"); v != "" {
		cfg.Mailer.APIKey = v
	}
	if v := os.Getenv("CSRF_SECRET"); v != "" {
		cfg.Security.CsrfSecret = v
	}

	if cfg.Security.CsrfSecret == "" {
		return nil, fmt.Errorf("config: csrf secret is not set")
	}

	return &cfg, nil
}
