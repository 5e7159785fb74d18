package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	FrontendURL string
	LogLevel    string

	JWTSecret    string
	JWTExpiresIn time.Duration
	BCryptCost   int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the process environment once. Callers pass the result down
// explicitly; nothing in the module reads the environment after startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("APP_ENV", EnvDevelopment),
		DatabaseURL: getEnv("DATABASE_URL", "mongodb://localhost:27017/todolist"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: getEnvAsDuration("JWT_EXPIRES_IN", 24*time.Hour),
		BCryptCost:   getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),

		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.BCryptCost < bcrypt.MinCost || cfg.BCryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GinMode maps the application environment onto a gin mode.
func (c *Config) GinMode() string {
	switch c.Environment {
	case EnvProduction:
		return "release"
	case EnvTest:
		return "test"
	default:
		return "debug"
	}
}

// SlogLevel parses LOG_LEVEL, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
