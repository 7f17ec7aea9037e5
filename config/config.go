package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	LogLevel        string
	StoreBaseURL    string
	HTTPTimeout     time.Duration
	DefaultLanguage string
	RedisAddr       string
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StoreBaseURL:    getEnv("STORE_BASE_URL", "https://raw.githubusercontent.com/rmucenieks/store-poc/main/API"),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
