package config

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the client configuration, sourced from the environment.
type Config struct {
	ServerURL   string        `validate:"required,url"`
	AuthToken   string        // empty means unauthenticated; relationship operations are disabled
	HTTPTimeout time.Duration `validate:"required,min=1s"`
	Env         string
}

// Load reads configuration from the environment, falling back to a .env file
// when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerURL:   getEnv("SERVER_URL", "http://localhost:5100/api/v1"),
		AuthToken:   getEnv("AUTH_TOKEN", ""),
		HTTPTimeout: timeout,
		Env:         getEnv("ENV", "development"),
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
