package config

import (
	"os"
	"strconv"
	"time"
)

// Config reúne toda la configuración del proceso.
// Todo viene por env; nada es obligatorio (defaults de dev).
type Config struct {
	Port string

	// Backend de datos: DB_DSN => postgres, DATA_DIR => snapshot local,
	// ninguno => in-memory.
	DBDSN   string
	DataDir string

	// Tokens de sesión. Sin secret => modo dev (token vacío + X-Debug-User-ID).
	TokenSecret string
	TokenTTL    time.Duration

	// Upstream de bios. Sin BaseURL/APIKey => fallback fijo.
	BioBaseURL string
	BioAPIKey  string
	BioModel   string
	BioTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DBDSN:       getEnv("DB_DSN", ""),
		DataDir:     getEnv("DATA_DIR", ""),
		TokenSecret: getEnv("TOKEN_SECRET", ""),
		TokenTTL:    getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		BioBaseURL:  getEnv("BIO_API_URL", ""),
		BioAPIKey:   getEnv("BIO_API_KEY", ""),
		BioModel:    getEnv("BIO_MODEL", ""),
		BioTimeout:  getEnvAsDuration("BIO_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
