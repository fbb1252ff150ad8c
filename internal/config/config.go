package config

import "time"

// Config holds all server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// SRSConfig overrides the scheduler defaults. Zero values keep the default.
type SRSConfig struct {
	DefaultEaseFactor float64 `mapstructure:"default_ease_factor" validate:"gte=0"`
	MinEaseFactor     float64 `mapstructure:"min_ease_factor" validate:"gte=0"`
	AgainPenalty      float64 `mapstructure:"again_penalty" validate:"gte=0"`
	EasyBonus         float64 `mapstructure:"easy_bonus" validate:"gte=0"`
	EasyMultiplier    float64 `mapstructure:"easy_multiplier" validate:"gte=0"`
	MaxIntervalDays   int     `mapstructure:"max_interval_days" validate:"gte=0"`
}

// ClientConfig holds the study client settings.
type ClientConfig struct {
	APIURL   string        `mapstructure:"api_url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	LogLevel string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Theme    string        `mapstructure:"theme" validate:"required"`
	Deck     string        `mapstructure:"deck"`
}
