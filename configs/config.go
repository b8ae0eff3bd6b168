package config

import (
	"os"
	"time"
)

type Config struct {
	APIBaseURL       string
	ListenAddr       string
	HTTPTimeout      time.Duration
	AnalyticsRefresh string
}

func LoadConfig() *Config {
	return &Config{
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8000/api"),
		ListenAddr:       getEnv("LISTEN_ADDR", ":3000"),
		HTTPTimeout:      getDuration("HTTP_TIMEOUT", 30*time.Second),
		AnalyticsRefresh: getEnv("ANALYTICS_REFRESH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
