// Package db opens the gorm connection and owns the schema migration.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assetadapters "twala_backend/internal/feature/assets/adapters"
	onboardingadapters "twala_backend/internal/feature/onboarding/adapters"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// Config describes the database connection.
// DSN, when set, is used verbatim; otherwise it is built from the parts.
type Config struct {
	Driver   string
	DSN      string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the connection string for cfg.
func BuildDSN(cfg Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	if cfg.Driver == DriverSQLite {
		name := cfg.Name
		if name == "" {
			name = "twala.db"
		}
		return "file:" + name + "?_foreign_keys=on"
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Africa/Luanda",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// ConnectWithRetry calls open until it succeeds or the next attempt would pass timeout.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err, "attempt", attempt)
		time.Sleep(retryInterval)
	}
}

// OpenerFor returns the gorm opener of a driver.
func OpenerFor(driver string) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }, nil
	case DriverSQLite, "":
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

// Open connects using cfg. Postgres is retried for up to 60s; sqlite is opened once.
func Open(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn := BuildDSN(cfg)
	timeout := 60 * time.Second
	if cfg.Driver == DriverPostgres {
		// 不正なDSNはリトライしても直らない
		if _, err := pgx.ParseConfig(dsn); err != nil {
			return nil, fmt.Errorf("invalid postgres DSN: %w", err)
		}
	} else {
		timeout = 0
	}
	db, err := ConnectWithRetry(dsn, timeout, open)
	if err != nil {
		return nil, err
	}
	if cfg.Driver != DriverPostgres {
		// sqlite は単一ライター
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates every table the service reads.
// custody_accounts と transactions は口座管理側の所有ですが、開発環境用に同じスキーマを作成します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&assetadapters.AssetModel{},
		&onboardingadapters.CustodyAccountModel{},
		&onboardingadapters.TransactionModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
