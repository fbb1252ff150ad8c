package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix shared by every environment variable the
// application reads, e.g. DECKSTUDY_SERVER_PORT.
const EnvPrefix = "DECKSTUDY"

var validate = validator.New()

// newViper builds a viper instance that reads config.yaml from the working
// directory (optional) and DECKSTUDY_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile loads config.yaml when present. A missing file is not an error.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// Load reads the server configuration from environment variables and an
// optional config file. Environment variables take precedence over values from
// config files. Returns a populated Config or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := newViper()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	// AutomaticEnv only resolves keys viper already knows about, so keys
	// without a default are bound explicitly.
	for _, key := range []string{
		"database.url",
		"srs.default_ease_factor",
		"srs.min_ease_factor",
		"srs.again_penalty",
		"srs.easy_bonus",
		"srs.easy_multiplier",
		"srs.max_interval_days",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadClient reads the study client configuration. Flag values bound into v
// by the caller take precedence over environment variables; pass nil to read
// from the environment and config file only.
func LoadClient(v *viper.Viper) (*ClientConfig, error) {
	if v == nil {
		v = newViper()
	} else {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	v.SetDefault("client.api_url", "http://localhost:8080")
	v.SetDefault("client.timeout", 10*time.Second)
	v.SetDefault("client.log_level", "warn")
	v.SetDefault("client.theme", "monokai")
	v.SetDefault("client.deck", "")

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	// Unmarshal walks every known key, so env and flag overrides of nested
	// keys apply; UnmarshalKey("client") would only see defaults.
	var wrapper struct {
		Client ClientConfig `mapstructure:"client"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}

	cfg := wrapper.Client
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("client config validation failed: %w", err)
	}

	return &cfg, nil
}
