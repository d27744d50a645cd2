package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabasePath  string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	FreeScanLimit int
	MaxUploadMB   int
	LogJSON       bool
	LogDebug      bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "data/resumeai.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "resumeai-scanner"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		FreeScanLimit: getEnvInt("FREE_SCAN_LIMIT", 3),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 15),
		LogJSON:       getEnvBool("LOG_JSON", false),
		LogDebug:      getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
