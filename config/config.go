package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BookingAPIURL  string
	CartBackend    string // memory, redis, postgres
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	DatabaseURL    string
	CourtsCacheTTL time.Duration
	ScrollerDays   int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	apiURL, exists := os.LookupEnv("BOOKING_API_URL")
	if !exists || apiURL == "" {
		return nil, fmt.Errorf("BOOKING_API_URL is required")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		BookingAPIURL:  strings.TrimRight(apiURL, "/"),
		CartBackend:    strings.ToLower(getEnv("CART_BACKEND", "memory")),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		CourtsCacheTTL: getEnvDuration("COURTS_CACHE_TTL", 1*time.Minute),
		ScrollerDays:   getEnvInt("SCROLLER_DAYS", 10),
	}

	switch cfg.CartBackend {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("unknown CART_BACKEND '%v'", cfg.CartBackend)
	}

	if cfg.CartBackend == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when CART_BACKEND=postgres")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
