package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	FirebaseProject  string
	Environment      string
	MailAPIBaseURL   string
	MailAPIKey       string
	WebhookSecret    string
	EnsureMaxRetries int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirebaseProject:  getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		MailAPIBaseURL:   getEnv("MAIL_API_BASE_URL", "http://localhost:8025"),
		MailAPIKey:       getEnv("MAIL_API_KEY", ""),
		WebhookSecret:    getEnv("WEBHOOK_SECRET", "dev-webhook-secret"),
		EnsureMaxRetries: getEnvAsInt64("TEMPLATE_ENSURE_MAX_RETRIES", 5),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
