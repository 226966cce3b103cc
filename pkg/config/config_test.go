package config

import (
	"strings"
	"testing"
)

func TestProtectedCategoryList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Pizzas", []string{"Pizzas"}},
		{"multiple with spaces", "Pizzas, Special Pizzas ,Burgers", []string{"Pizzas", "Special Pizzas", "Burgers"}},
		{"dangling commas", ",Pizzas,,", []string{"Pizzas"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ProtectedCategories: tt.raw}
			got := cfg.ProtectedCategoryList()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestValidateForProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:        EnvProduction,
			LogLevel:           "info",
			CORSAllowedOrigins: "https://pos.example.com",
			ExportRetention:    20,
		}
	}

	t.Run("valid production config passes", func(t *testing.T) {
		if err := ValidateForProduction(base()); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("non-production skips validation", func(t *testing.T) {
		cfg := base()
		cfg.Environment = EnvDevelopment
		cfg.CORSAllowedOrigins = "*"
		cfg.LogLevel = "debug"
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("expected nil for development, got %v", err)
		}
	})

	t.Run("rejects debug logging", func(t *testing.T) {
		cfg := base()
		cfg.LogLevel = "debug"
		err := ValidateForProduction(cfg)
		if err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
			t.Fatalf("expected LOG_LEVEL error, got %v", err)
		}
	})

	t.Run("rejects wildcard CORS", func(t *testing.T) {
		cfg := base()
		cfg.CORSAllowedOrigins = "*"
		err := ValidateForProduction(cfg)
		if err == nil || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
			t.Fatalf("expected CORS error, got %v", err)
		}
	})

	t.Run("rejects zero export retention", func(t *testing.T) {
		cfg := base()
		cfg.ExportRetention = 0
		err := ValidateForProduction(cfg)
		if err == nil || !strings.Contains(err.Error(), "EXPORT_RETENTION") {
			t.Fatalf("expected EXPORT_RETENTION error, got %v", err)
		}
	})

	t.Run("collects multiple failures", func(t *testing.T) {
		cfg := base()
		cfg.LogLevel = "debug"
		cfg.CORSAllowedOrigins = "*"
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "LOG_LEVEL") || !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
			t.Errorf("expected both failures reported, got %v", err)
		}
	})
}
