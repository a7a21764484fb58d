package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const devSecret = "dev-secret-change-in-production"

var ErrProductionSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	TokenHeader string
	BcryptCost  int
	CORSOrigin  string
	LogLevel    string
	LogFormat   string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		JWTSecret:   getEnv("JWT_SECRET", devSecret),
		TokenHeader: getEnv("TOKEN_HEADER", "x-auth-token"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	switch cfg.DBDriver {
	case "sqlite":
		cfg.DatabaseDSN = getEnv("DATABASE_DSN", "data/mediatrack.db")
	case "mysql":
		cfg.DatabaseDSN = getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/mediatrack?parseTime=true&clientFoundRows=true")
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "10h"))
	if err != nil || expiry <= 0 {
		return Config{}, fmt.Errorf("invalid JWT_EXPIRY: %q", os.Getenv("JWT_EXPIRY"))
	}
	cfg.JWTExpiry = expiry

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST: %q", os.Getenv("BCRYPT_COST"))
	}
	cfg.BcryptCost = cost

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		return Config{}, ErrProductionSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
