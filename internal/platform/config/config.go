// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AssetSourceStatic = "static"
	AssetSourceDB     = "db"
)

// Config is the full runtime configuration.
type Config struct {
	HTTPAddr string

	DBDriver      string // sqlite | postgres
	DBDSN         string
	DBUser        string
	DBPassword    string
	DBName        string
	DBHost        string
	DBPort        string
	DBSSLMode     string
	RunMigrations bool

	RedisHost     string // empty disables Redis
	RedisPort     string
	RedisPassword string

	JWTSecret   string
	LogLevel    slog.Level
	CORSOrigins []string

	ToastTTL       time.Duration
	SessionIdleTTL time.Duration
	SweepSchedule  string
	AssetSource    string // static | db
	AssetCacheTTL  time.Duration
}

// Load reads .env files (when present) and then the process environment.
// Variables already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var errs []string
	dur := func(key string, def time.Duration) time.Duration {
		d, err := getEnvDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return d
	}

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBDSN:          os.Getenv("DB_DSN"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", false),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ToastTTL:       dur("TOAST_TTL", 5*time.Second),
		SessionIdleTTL: dur("SESSION_IDLE_TTL", 12*time.Hour),
		SweepSchedule:  getEnv("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		AssetSource:    strings.ToLower(getEnv("ASSET_SOURCE", AssetSourceStatic)),
		AssetCacheTTL:  dur("ASSET_CACHE_TTL", 5*time.Minute),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL: %v", err))
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Sprintf("DB_DRIVER: unsupported %q", cfg.DBDriver))
	}
	switch cfg.AssetSource {
	case AssetSourceStatic, AssetSourceDB:
	default:
		errs = append(errs, fmt.Sprintf("ASSET_SOURCE: unsupported %q", cfg.AssetSource))
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// RedisEnabled reports whether a Redis host is configured.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// RedisAddr returns host:port.
func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// getEnv は環境変数を取得し、未設定の場合はデフォルト値を返します。
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
