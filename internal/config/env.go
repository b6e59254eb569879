package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Env struct {
	AppAddr            string
	GinMode            string
	CORSAllowedOrigins []string
	SessionBackend     string
	RedisAddr          string
	SessionTTL         time.Duration
	JWTSecret          string
}

// LoadEnv reads configuration from the environment, loading a .env file first
// when one is present.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),
		CORSAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),
		SessionBackend: getenv("SESSION_BACKEND", SessionBackendMemory),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		SessionTTL:     getduration("SESSION_TTL", 24*time.Hour),
		JWTSecret:      getenv("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
