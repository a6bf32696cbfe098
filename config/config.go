package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog backend configuration
type CatalogConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SessionConfig holds browse-session configuration
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront/")

	// Environment variable settings
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Catalog defaults. The base URL has no sensible default; registering the
	// key still lets AutomaticEnv pick it up during Unmarshal.
	v.SetDefault("catalog.base_url", "")

	// Session defaults
	v.SetDefault("session.ttl", "30m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set STOREFRONT_CATALOG_BASE_URL)")
	}

	if strings.HasSuffix(config.Catalog.BaseURL, "/") {
		return fmt.Errorf("catalog base URL must not end with a slash: %s", config.Catalog.BaseURL)
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got: %s", config.Session.TTL)
	}

	return nil
}
