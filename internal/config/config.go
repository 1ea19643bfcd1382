package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env             string
	HTTPPort        string
	LogLevel        string
	FixturesPath    string
	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
	MaxCVSizeMB     int64
	SearchCacheTTL  time.Duration
	SessionTTL      time.Duration
	PageSize        int
}

// IsProduction сообщает, запущено ли приложение в production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:          env,
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		FixturesPath: getEnv("FIXTURES_PATH", ""),
	}

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	} else {
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	// Rate limiting настройки
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "10"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))

	cfg.MaxCVSizeMB = mustParseInt64(getEnv("MAX_CV_SIZE_MB", "5"))
	cfg.SearchCacheTTL = mustParseDuration(getEnv("SEARCH_CACHE_TTL", "5m"))
	cfg.SessionTTL = mustParseDuration(getEnv("SESSION_TTL", "24h"))
	cfg.PageSize = int(mustParseInt64(getEnv("PAGE_SIZE", "15")))

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("config: PAGE_SIZE должен быть положительным, получено %d", cfg.PageSize)
	}
	if cfg.MaxCVSizeMB <= 0 {
		return nil, fmt.Errorf("config: MAX_CV_SIZE_MB должен быть положительным, получено %d", cfg.MaxCVSizeMB)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// mustParseDuration безопасно парсит строку в duration.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: не удалось распарсить длительность %q: %v", v, err)
	}
	return dur
}

// mustParseInt64 безопасно парсит строку в int64.
func mustParseInt64(v string) int64 {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: не удалось распарсить число %q: %v", v, err)
	}
	return num
}
