package di

import (
	"twala_backend/internal/platform/config"
	platformdb "twala_backend/internal/platform/db"
)

// DBConfig maps the service configuration to the database connection settings.
func DBConfig(cfg config.Config) platformdb.Config {
	return platformdb.Config{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DBDSN,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		SSLMode:  cfg.DBSSLMode,
	}
}
