package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDriver      string
	DBSource      string
	SessionSecret string
	AdminPassword string
	Email         EmailConfig
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

// Load reads configuration from the environment, with an optional .env file.
// The session-signing secret and the admin passphrase have no defaults; the
// process refuses to start without them.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DBDriver:      getEnvOrDefault("DB_DRIVER", "sqlite"),
		DBSource:      getEnvOrDefault("DB_SOURCE", "membership.db"),
		SessionSecret: mustGetEnv("SESSION_SECRET"),
		AdminPassword: mustGetEnv("ADMIN_PASSWORD"),
		Email:         LoadEmailConfig(),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("missing required env: %s", key)
	}
	return value
}
