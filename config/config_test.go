package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("STOREFRONT_SERVER_PORT")
		os.Unsetenv("STOREFRONT_SERVER_ENVIRONMENT")
		os.Unsetenv("STOREFRONT_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("STOREFRONT_CATALOG_BASE_URL")
		os.Unsetenv("STOREFRONT_SESSION_TTL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required base URL
		os.Setenv("STOREFRONT_CATALOG_BASE_URL", "http://catalog.internal")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "http://catalog.internal" {
			t.Errorf("Catalog.BaseURL = %s, want http://catalog.internal", cfg.Catalog.BaseURL)
		}
		if cfg.Session.TTL != 30*time.Minute {
			t.Errorf("Session.TTL = %v, want 30m", cfg.Session.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STOREFRONT_SERVER_PORT", "9090")
		os.Setenv("STOREFRONT_SERVER_ENVIRONMENT", "production")
		os.Setenv("STOREFRONT_CATALOG_BASE_URL", "https://api.bazaarly.app")
		os.Setenv("STOREFRONT_SESSION_TTL", "10m")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "https://api.bazaarly.app" {
			t.Errorf("Catalog.BaseURL = %s, want https://api.bazaarly.app", cfg.Catalog.BaseURL)
		}
		if cfg.Session.TTL != 10*time.Minute {
			t.Errorf("Session.TTL = %v, want 10m", cfg.Session.TTL)
		}
	})

	t.Run("fails validation when base URL is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing base URL")
		}
		if err != nil && err.Error() != "invalid configuration: catalog base URL is required (set STOREFRONT_CATALOG_BASE_URL)" {
			t.Errorf("Load() error = %v, want 'catalog base URL is required'", err)
		}
	})

	t.Run("fails validation for trailing slash in base URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STOREFRONT_CATALOG_BASE_URL", "http://catalog.internal/")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for trailing slash")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("validates successfully with all required fields", func(t *testing.T) {
		cfg := &Config{
			Catalog: CatalogConfig{
				BaseURL: "http://catalog.internal",
			},
			Session: SessionConfig{
				TTL: 30 * time.Minute,
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when base URL is empty", func(t *testing.T) {
		cfg := &Config{
			Session: SessionConfig{
				TTL: 30 * time.Minute,
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty base URL")
		}
	})

	t.Run("fails for base URL with trailing slash", func(t *testing.T) {
		cfg := &Config{
			Catalog: CatalogConfig{
				BaseURL: "http://catalog.internal/",
			},
			Session: SessionConfig{
				TTL: 30 * time.Minute,
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for trailing slash")
		}
	})

	t.Run("fails for non-positive session TTL", func(t *testing.T) {
		cfg := &Config{
			Catalog: CatalogConfig{
				BaseURL: "http://catalog.internal",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero TTL")
		}
	})
}
