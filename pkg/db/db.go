package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config carries connection settings. A zero Config falls back to the
// DATABASE_URL environment variable.
type Config struct {
	URL string
}

// URL returns the DATABASE_URL environment variable, empty when unset.
func URL() string {
	return os.Getenv("DATABASE_URL")
}

// Connect opens a GORM handle against Postgres. Prepared-statement caching is
// disabled so the raw COALESCE(MAX(...)) identifier queries run over the
// simple protocol.
func Connect(cfg Config) (*gorm.DB, error) {
	dsn := cfg.URL
	if dsn == "" {
		dsn = URL()
	}
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	})

	handle, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(queryLogMode()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return handle, nil
}

// queryLogMode keeps SQL logging off unless CRASHDB_LOG_LEVEL=debug.
func queryLogMode() logger.LogLevel {
	if os.Getenv("CRASHDB_LOG_LEVEL") == "debug" {
		return logger.Info
	}
	return logger.Silent
}
