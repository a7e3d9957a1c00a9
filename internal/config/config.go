package config

import (
	"os"
)

type Config struct {
	DatabaseURL          string
	PriceChartingAPIKey  string
	PriceChartingBaseURL string
	Port                 string
	Environment          string
}

func Load() *Config {
	return &Config{
		DatabaseURL:          getEnv("DATABASE_URL", "games.db"),
		PriceChartingAPIKey:  getEnv("PRICECHARTING_API_KEY", ""),
		PriceChartingBaseURL: getEnv("PRICECHARTING_BASE_URL", "https://www.pricecharting.com"),
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
