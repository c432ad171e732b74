package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/srgjo27/package_pricing/internal/platform/database"
)

type Config struct {
	DB database.Config

	RedisHost string
	RedisPort string

	HTTPAddr string

	RuleSetCacheTTL   time.Duration
	BookingHoldTTL    time.Duration
	CleanupInterval   time.Duration
	LowStockThreshold int
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads envFile into the process environment, when it exists, and
// builds the Config from it. Variables already set in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "package_pricing"),
		},
		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
	}

	var err error

	if cfg.RuleSetCacheTTL, err = getDuration("RULESET_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.BookingHoldTTL, err = getDuration("BOOKING_HOLD_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	if cfg.CleanupInterval, err = getDuration("CLEANUP_INTERVAL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.LowStockThreshold, err = getInt("LOW_STOCK_THRESHOLD", 3); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}

	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}
