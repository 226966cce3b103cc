package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// Persistence — one JSON document per key under DataDir.
	DataDir string `conf:"default:./data,env:DATA_DIR"`

	// Redis — optional backend for the export gateway's fallback tier.
	// Leave empty to use the KV-inline fallback tier instead.
	RedisURL string `conf:"default:,env:REDIS_URL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`
	ListenAddr  string `conf:"default::8080,env:LISTEN_ADDR"`

	// Point of sale
	Currency            string `conf:"default:PKR,env:CURRENCY"`
	ShopName            string `conf:"default:Kashi Pizza Home,env:SHOP_NAME"`
	InvoicePrefix       string `conf:"default:INV,env:INVOICE_PREFIX"`
	InvoicePageSize     int    `conf:"default:20,env:INVOICE_PAGE_SIZE"`
	ExportRetention     int    `conf:"default:20,env:EXPORT_RETENTION"`
	ExportDir           string `conf:"default:./data/exports,env:EXPORT_DIR"`
	ProtectedCategories string `conf:"default:,env:PROTECTED_CATEGORIES"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:kashi-pos,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"default:,env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"default:,env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ProtectedCategoryList splits the PROTECTED_CATEGORIES value into labels,
// trimming spaces and dropping empties.
func (c *Config) ProtectedCategoryList() []string {
	parts := strings.Split(c.ProtectedCategories, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.CORSAllowedOrigins == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must not be '*' in production")
	}

	if cfg.ExportRetention < 1 {
		errs = append(errs, "EXPORT_RETENTION must be at least 1")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
