package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	LogLevel        string
	StripeSecretKey string
	FrontendURL     string
	BackendURL      string
	DatabaseURL     string
	DatabaseName    string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8000"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseName:    getEnv("DATABASE_NAME", "storefront"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "fulfillment_orders"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
