package config

import (
	"os"
)

// Config holds everything read from the environment.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	GeminiAPIKey string
	GeminiModel  string

	StorageBackend string // "mysql" or "memory"
	UseMockLLM     bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "chat_app"),

		JWTSecret: getEnv("JWT_SECRET", "your_jwt_secret"),

		GeminiAPIKey: getEnv("GEMINI_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		StorageBackend: getEnv("STORAGE_BACKEND", "mysql"),
		UseMockLLM:     getBoolEnv("USE_MOCK_LLM", false),
	}
}
