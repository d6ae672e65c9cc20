package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr         string
	StaticDir    string
	CORSOrigins  string
	PaymentDelay time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		Addr:         ":8080",
		StaticDir:    "./web/static",
		CORSOrigins:  "*",
		PaymentDelay: time.Second,
	}

	if v := os.Getenv("STOREFRONT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STOREFRONT_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("STOREFRONT_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = v
	}
	if v := os.Getenv("STOREFRONT_PAYMENT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.PaymentDelay = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}
