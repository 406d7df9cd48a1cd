package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Role-label dictionary local store (sqlite file)
	RoleDBPath string `mapstructure:"ROLE_DB_PATH"`

	// Gateway call deadline. The remote store never gets an unbounded call.
	GatewayTimeoutSec int `mapstructure:"GATEWAY_TIMEOUT_SEC"`

	// Toast lifetimes in milliseconds. Errors stay visible longer.
	ToastTTLMillis      int `mapstructure:"TOAST_TTL_MS"`
	ToastErrorTTLMillis int `mapstructure:"TOAST_ERROR_TTL_MS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "roadworks")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Local role dictionary
	viper.SetDefault("ROLE_DB_PATH", "roadworks_roles.db")

	// Gateway / notification defaults
	viper.SetDefault("GATEWAY_TIMEOUT_SEC", 10)
	viper.SetDefault("TOAST_TTL_MS", 3000)
	viper.SetDefault("TOAST_ERROR_TTL_MS", 5000)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.GatewayTimeoutSec <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT_SEC must be positive")
	}
	if config.ToastTTLMillis <= 0 || config.ToastErrorTTLMillis <= 0 {
		return fmt.Errorf("toast lifetimes must be positive")
	}
	return nil
}

// GatewayTimeout returns the per-call deadline applied to gateway operations
func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSec) * time.Second
}

// ToastTTL returns the auto-dismiss delay for success and info toasts
func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.ToastTTLMillis) * time.Millisecond
}

// ToastErrorTTL returns the auto-dismiss delay for error toasts
func (c *Config) ToastErrorTTL() time.Duration {
	return time.Duration(c.ToastErrorTTLMillis) * time.Millisecond
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
