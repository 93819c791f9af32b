package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"github.com/joho/godotenv"
)

const (
	StorageCookie = "cookie"
	StorageRedis  = "redis"

	generatedKeyLength = 64
)

type Config struct {
	AppName        string
	Port           string
	MongoURI       string
	DBName         string
	RedisAddr      string
	RedisPassword  string
	JWTKey         string
	AuthDelay      time.Duration
	SessionTTL     time.Duration
	CacheTTL       time.Duration
	StorageBackend string
	AllowedOrigins []string
}

// LoadEnv reads .env when present. A missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debugf("No .env file loaded: %v", err)
	}
}

func LoadConfig() *Config {
	cfg := &Config{
		AppName:        getEnv("APP_NAME", "nestora"),
		Port:           getEnv("PORT", "8080"),
		MongoURI:       os.Getenv("MONGOURI"),
		DBName:         getEnv("DB", "nestora"),
		RedisAddr:      os.Getenv("REDIS_ADD"),
		RedisPassword:  os.Getenv("REDIS_PASS"),
		JWTKey:         os.Getenv("JWT_KEY"),
		AuthDelay:      getEnvDuration("AUTH_DELAY", time.Second),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_DAYS", 30)) * 24 * time.Hour,
		CacheTTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageCookie)),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if cfg.StorageBackend != StorageCookie && cfg.StorageBackend != StorageRedis {
		utils.Logger.Warnf("Unknown STORAGE_BACKEND '%s', using cookies", cfg.StorageBackend)
		cfg.StorageBackend = StorageCookie
	}
	if cfg.StorageBackend == StorageRedis && cfg.RedisAddr == "" {
		utils.Logger.Warn("STORAGE_BACKEND=redis needs REDIS_ADD, using cookies")
		cfg.StorageBackend = StorageCookie
	}
	if cfg.JWTKey == "" {
		utils.Logger.Warn("JWT_KEY is not set, signing with a random key; tokens will not survive a restart")
		cfg.JWTKey = utils.RandomString(generatedKeyLength)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
