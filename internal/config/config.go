package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	SiteBaseURL string

	// Client-side throttle
	RequestLimit  int
	RequestWindow time.Duration

	// Credential store
	CredstorePath string
	Keyphrase     string

	// Logging
	LogLevel string
}

func Load() *Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		HTTPTimeout:   getEnvDuration("INKLORE_HTTP_TIMEOUT", 30*time.Second),
		UserAgent:     getEnv("INKLORE_USER_AGENT", "go-inklore"),
		SiteBaseURL:   getEnv("INKLORE_SITE_URL", ""),
		RequestLimit:  getEnvInt("INKLORE_REQUEST_LIMIT", 0),
		RequestWindow: getEnvDuration("INKLORE_REQUEST_WINDOW", time.Minute),
		CredstorePath: getEnv("INKLORE_CREDSTORE", "inklore.db"),
		Keyphrase:     getEnv("INKLORE_KEYPHRASE", ""),
		LogLevel:      getEnv("INKLORE_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
