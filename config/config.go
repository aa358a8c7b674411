package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Sizing    SizingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Swatch    SwatchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SizingConfig selects the size chart and estimator defaults
type SizingConfig struct {
	Chart              string  `mapstructure:"chart"`      // "classic" or "fine"
	ChartFile          string  `mapstructure:"chart_file"` // overrides Chart when set
	DefaultTolerance   float64 `mapstructure:"default_tolerance"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// SwatchConfig holds palette swatch rendering options
type SwatchConfig struct {
	CellSize int `mapstructure:"cell_size"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stylefit/")

	// STYLEFIT_SIZING_CHART maps to sizing.chart
	v.SetEnvPrefix("STYLEFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile exports variables from ./.env without overriding ones already set.
// A missing file is not an error.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return gotenv.Load(".env")
}

// setDefaults sets default configuration values.
// Every key needs a default so AutomaticEnv can bind it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("sizing.chart", "classic")
	v.SetDefault("sizing.chart_file", "")
	v.SetDefault("sizing.default_tolerance", 4.0)
	v.SetDefault("sizing.enable_debug_logging", false)

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("ratelimit.per_ip", 120)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("swatch.cell_size", 64)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Sizing.ChartFile == "" && config.Sizing.Chart != "classic" && config.Sizing.Chart != "fine" {
		return fmt.Errorf("sizing chart must be 'classic' or 'fine', got: %s", config.Sizing.Chart)
	}

	if config.Sizing.DefaultTolerance < 0 {
		return fmt.Errorf("sizing default tolerance must not be negative, got: %.2f", config.Sizing.DefaultTolerance)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	if config.RateLimit.PerIP > 0 && config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive when rate limiting is enabled")
	}

	if config.Swatch.CellSize < 8 || config.Swatch.CellSize > 512 {
		return fmt.Errorf("swatch cell size must be between 8 and 512, got: %d", config.Swatch.CellSize)
	}

	return nil
}
