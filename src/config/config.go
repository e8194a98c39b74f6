package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	AdviceAPIKey  string
	AdviceBaseURL string
	AdviceModel   string
	AdviceTimeout time.Duration

	LedgerBatchLimit int
	CategoryCacheTTL time.Duration
}

func Load() (Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	var errs []error

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "./data/fintrack.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		AdviceAPIKey:  getEnv("ADVICE_API_KEY", ""),
		AdviceBaseURL: getEnv("ADVICE_BASE_URL", ""),
		AdviceModel:   getEnv("ADVICE_MODEL", "gpt-4o-mini"),
	}

	cfg.TokenTTL = getDuration("JWT_TTL", 24*time.Hour, &errs)
	cfg.AdviceTimeout = getDuration("ADVICE_TIMEOUT", 20*time.Second, &errs)
	cfg.CategoryCacheTTL = getDuration("CATEGORY_CACHE_TTL", time.Minute, &errs)
	cfg.BcryptCost = getInt("BCRYPT_COST", 10, &errs)
	cfg.LedgerBatchLimit = getInt("LEDGER_BATCH_LIMIT", 5000, &errs)

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DB_DRIVER=postgres"))
		}
	case "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if cfg.LedgerBatchLimit <= 0 {
		errs = append(errs, errors.New("LEDGER_BATCH_LIMIT must be positive"))
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}

func getInt(key string, fallback int, errs *[]error) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
