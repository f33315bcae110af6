package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/vaultpass/passgen/internal/repository"
)

type Config struct {
	Host          string
	Port          string
	Env           string
	StoreDriver   string
	StorePath     string
	DatabaseDSN   string
	DefaultLength int
	MaxLength     int
	RateLimitRPS  float64
	RateBurst     int
}

func Load() Config {
	cfg := Config{
		Host:          getEnv("HOST", "127.0.0.1"),
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		StoreDriver:   getEnv("STORE_DRIVER", repository.DriverSQLite),
		StorePath:     getEnv("STORE_PATH", "passgen.db"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		DefaultLength: getEnvInt("DEFAULT_LENGTH", 12),
		MaxLength:     getEnvInt("MAX_LENGTH", 128),
		RateLimitRPS:  getEnvFloat("RATE_LIMIT_RPS", 20),
		RateBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
	}

	if cfg.DefaultLength < 1 {
		slog.Warn("DEFAULT_LENGTH must be positive, using 12", "value", cfg.DefaultLength)
		cfg.DefaultLength = 12
	}
	if cfg.MaxLength < 1 {
		slog.Warn("MAX_LENGTH must be positive, using 128", "value", cfg.MaxLength)
		cfg.MaxLength = 128
	}
	if cfg.DefaultLength > cfg.MaxLength {
		slog.Warn("DEFAULT_LENGTH exceeds MAX_LENGTH, using MAX_LENGTH", "default", cfg.DefaultLength, "max", cfg.MaxLength)
		cfg.DefaultLength = cfg.MaxLength
	}

	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Store returns the storage backend selection.
func (c Config) Store() repository.StoreConfig {
	return repository.StoreConfig{
		Driver: c.StoreDriver,
		Path:   c.StorePath,
		DSN:    c.DatabaseDSN,
	}
}

// IsProduction reports whether ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
