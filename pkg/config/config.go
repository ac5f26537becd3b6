package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendAirtable = "airtable"
	BackendMemory   = "memory"
)

// Config holds all application configuration values
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"production"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Store StoreConfig

	// Landing page
	LaunchDate       time.Time `env:"LAUNCH_DATE" envDefault:"2026-03-01T00:00:00Z"`
	BusinessFormDemo bool      `env:"BUSINESS_FORM_DEMO" envDefault:"false"`
}

// StoreConfig selects and configures the external data store
type StoreConfig struct {
	Backend         string        `env:"STORE_BACKEND" envDefault:"supabase"`
	LeadsTable      string        `env:"LEADS_TABLE" envDefault:"leads"`
	EarlyUsersTable string        `env:"EARLY_USERS_TABLE" envDefault:"early_users"`
	Timeout         time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`

	// The VITE_ prefixed names are shared with the front-end build and win
	// over the plain names when both are set.
	SupabaseURL         string `env:"SUPABASE_URL"`
	ViteSupabaseURL     string `env:"VITE_SUPABASE_URL"`
	SupabaseAnonKey     string `env:"SUPABASE_ANON_KEY"`
	ViteSupabaseAnonKey string `env:"VITE_SUPABASE_ANON_KEY"`

	DatabaseURL string `env:"DATABASE_URL"`

	AirtableAPIKey string `env:"AIRTABLE_API_KEY"`
	AirtableBaseID string `env:"AIRTABLE_BASE_ID"`
}

// SupabaseEndpoint returns the configured Supabase project URL
func (s StoreConfig) SupabaseEndpoint() string {
	return firstNonEmpty(s.ViteSupabaseURL, s.SupabaseURL)
}

// SupabaseKey returns the configured Supabase access key
func (s StoreConfig) SupabaseKey() string {
	return firstNonEmpty(s.ViteSupabaseAnonKey, s.SupabaseAnonKey)
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	return &cfg, nil
}

// Validate reports missing values the selected store backend cannot start without
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendSupabase:
		if c.Store.SupabaseEndpoint() == "" {
			errs = append(errs, errors.New("SUPABASE_URL (or VITE_SUPABASE_URL) is required"))
		}
		if c.Store.SupabaseKey() == "" {
			errs = append(errs, errors.New("SUPABASE_ANON_KEY (or VITE_SUPABASE_ANON_KEY) is required"))
		}
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required"))
		}
	case BackendAirtable:
		if c.Store.AirtableAPIKey == "" {
			errs = append(errs, errors.New("AIRTABLE_API_KEY is required"))
		}
		if c.Store.AirtableBaseID == "" {
			errs = append(errs, errors.New("AIRTABLE_BASE_ID is required"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend))
	}

	if c.Store.LeadsTable == "" || c.Store.EarlyUsersTable == "" {
		errs = append(errs, errors.New("LEADS_TABLE and EARLY_USERS_TABLE must not be empty"))
	}

	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
