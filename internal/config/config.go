package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database (file-based SQLite)
	DatabaseURL   string
	MigrationsDir string

	// Groq AI
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// Static assets
	PublicDir string

	// Rate limiting (0 = disabled)
	ChatRateLimit int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", "file:./vakilgpt.db"),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", "migrations"),
		GroqAPIKey:    mustGetEnv("GROQ_API_KEY"),
		GroqBaseURL:   getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:     getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		PublicDir:     getEnvOrDefault("PUBLIC_DIR", "./public"),
		ChatRateLimit: getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 0),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
