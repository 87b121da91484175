package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const devJWTSecret = "your-secret-key-change-in-production"

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

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Search configuration. The home point is the reference used by
	// distance sort when the caller does not send coordinates.
	HomeLatitude    float64 `mapstructure:"HOME_LATITUDE"`
	HomeLongitude   float64 `mapstructure:"HOME_LONGITUDE"`
	DefaultPageSize int     `mapstructure:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int     `mapstructure:"MAX_PAGE_SIZE"`

	// Tracing configuration
	OtelEnabled     bool    `mapstructure:"OTEL_ENABLED"`
	OtelEndpoint    string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName string  `mapstructure:"OTEL_SERVICE_NAME"`
	OtelSampleRatio float64 `mapstructure:"OTEL_SAMPLER_RATIO"`
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
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "badminton_directory")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", devJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Search defaults (downtown Vancouver)
	viper.SetDefault("HOME_LATITUDE", 49.2827)
	viper.SetDefault("HOME_LONGITUDE", -123.1207)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)

	// Tracing defaults
	viper.SetDefault("OTEL_ENABLED", false)
	viper.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	viper.SetDefault("OTEL_SERVICE_NAME", "badminton-directory")
	viper.SetDefault("OTEL_SAMPLER_RATIO", 0.1)
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
	if config.Environment == "production" {
		if config.JWTSecret == devJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.HomeLatitude < -90 || config.HomeLatitude > 90 {
		return fmt.Errorf("HOME_LATITUDE must be between -90 and 90")
	}
	if config.HomeLongitude < -180 || config.HomeLongitude > 180 {
		return fmt.Errorf("HOME_LONGITUDE must be between -180 and 180")
	}

	if config.MaxPageSize < 1 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive")
	}
	if config.DefaultPageSize < 1 || config.DefaultPageSize > config.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
