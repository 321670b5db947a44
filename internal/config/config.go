package config

import (
	"fmt"
	"path/filepath"
	"strconv"

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

	// Ingestion configuration
	DataDir          string `mapstructure:"DATA_DIR"`
	LiveStreamConfig string `mapstructure:"LIVESTREAM_CONFIG"`
	SerieLocation    string `mapstructure:"SERIE_LOCATION"`
	SeedOnBoot       bool   `mapstructure:"SEED_ON_BOOT"`
	ReseedCron       string `mapstructure:"RESEED_CRON"`

	// Admin routes are open when the secret is empty
	AdminJWTSecret string `mapstructure:"ADMIN_JWT_SECRET"`

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

	if config.LiveStreamConfig == "" {
		config.LiveStreamConfig = filepath.Join(config.DataDir, "series.json")
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults. DATABASE_URL must be a known key or AutomaticEnv never fills it
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "eurobot")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Ingestion defaults
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("LIVESTREAM_CONFIG", "")
	viper.SetDefault("SERIE_LOCATION", "")
	viper.SetDefault("SEED_ON_BOOT", true)
	viper.SetDefault("RESEED_CRON", "")

	viper.SetDefault("ADMIN_JWT_SECRET", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
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
	if _, err := strconv.Atoi(config.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", config.Port)
	}

	if config.Environment == "production" && config.AdminJWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET must be set in production")
	}

	if config.DatabaseURL == "" && config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
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

// AdminAuthEnabled reports whether administrative routes require a bearer token
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminJWTSecret != ""
}
