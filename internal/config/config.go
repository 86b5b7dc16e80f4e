// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Config holds all configuration values for the server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server. CORS_ORIGINS is comma separated.
	CORSOrigins []string

	// StorageBackend selects where favorites and bookings live.
	// One of memory (default), postgres, redis, s3.
	StorageBackend string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// BookingLatency is the simulated processing delay of a new booking.
	BookingLatency time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// LoadDotEnv seeds the environment from .env files (default ".env").
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load reads configuration from environment variables and returns a Config.
// The error names every required variable that is missing and every value
// that failed to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
	}

	var missing, invalid []string

	switch cfg.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		missing = appendIfEmpty(missing, "DATABASE_URL", cfg.DatabaseURL)
	case BackendRedis:
		missing = appendIfEmpty(missing, "REDIS_ADDR", cfg.RedisAddr)
	case BackendS3:
		missing = appendIfEmpty(missing, "S3_ENDPOINT", cfg.S3Endpoint)
		missing = appendIfEmpty(missing, "S3_ACCESS_KEY", cfg.S3AccessKey)
		missing = appendIfEmpty(missing, "S3_SECRET_KEY", cfg.S3SecretKey)
		missing = appendIfEmpty(missing, "S3_BUCKET", cfg.S3Bucket)
	default:
		invalid = append(invalid, fmt.Sprintf("STORAGE_BACKEND=%q (want memory, postgres, redis or s3)", cfg.StorageBackend))
	}

	var err error
	if cfg.S3UseSSL, err = strconv.ParseBool(getEnv("S3_USE_SSL", "false")); err != nil {
		invalid = append(invalid, "S3_USE_SSL")
	}
	if cfg.BookingLatency, err = time.ParseDuration(getEnv("BOOKING_LATENCY", "800ms")); err != nil || cfg.BookingLatency < 0 {
		invalid = append(invalid, "BOOKING_LATENCY")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid values: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config.Load: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func appendIfEmpty(missing []string, key, value string) []string {
	if value == "" {
		return append(missing, key)
	}
	return missing
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
