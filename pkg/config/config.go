package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config is everything the service reads from the environment.
type Config struct {
	DBDriver       string
	DatabaseURL    string
	DBLogLevel     string
	DBMaxOpenConns int
	RedisURL       string
	CacheTTL       time.Duration
	OrderQueueURL  string
}

// FromEnv builds a Config, falling back to defaults for anything unset.
func FromEnv() Config {
	return Config{
		DBDriver:       getEnv("DB_DRIVER", DriverPostgres),
		DatabaseURL:    databaseURL(),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		RedisURL:       os.Getenv("REDIS_URL"),
		CacheTTL:       getEnvDuration("CACHE_TTL", 5*time.Minute),
		OrderQueueURL:  os.Getenv("ORDER_EVENTS_QUEUE_URL"),
	}
}

func databaseURL() string {
	if os.Getenv("ENV") == "staging" {
		return os.Getenv("RDS_CONNECTION")
	}
	return os.Getenv("DATABASE_URL")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val, err := time.ParseDuration(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}
