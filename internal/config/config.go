package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	Environment      string
	LogLevel         string
	DatabaseURL      string
	DBMaxOpenConns   int
	DBMaxIdleConns   int
	DBConnMaxLife    time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins string
}

// Load reads configuration from environment variables. DATABASE_URL is
// required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		Addr:             getEnv("APP_ADDR", ":3001"),
		Environment:      getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBMaxOpenConns:   getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:   getInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLife:    getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}

	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
