package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	CORSOrigins string
}

func Load() *Config {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=capri port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   parseExpiry(getEnv("JWT_EXPIRES_IN", "7d")),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET no está definido")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET debe tener al menos 32 caracteres")
	}

	return cfg
}

// parseExpiry acepta duraciones de Go ("168h") y el sufijo "d" usado en
// la configuración original ("7d"). Ante un valor inválido cae al
// default de 7 días.
func parseExpiry(v string) time.Duration {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(v, "d")); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return 7 * 24 * time.Hour
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
