// Package store opens the ledger database and owns schema migration for
// every table the engine writes.
package store

import (
	"fmt"

	"dsc/store/debt"
	"dsc/store/event"
	"dsc/store/oracle"
	"dsc/store/token"
	"dsc/store/vault"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config database config
type Config struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// Open opens the configured database. The sqlite driver is pure Go and
// serves embedded and test deployments; postgres serves servers.
func Open(cfg Config) (*gorm.DB, error) {
	opts := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Driver {
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DSN), opts)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN), opts)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// MustOpen open or panic
func MustOpen(cfg Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		panic(err)
	}

	return db
}

// Migrate migrate all tables
func Migrate(db *gorm.DB) error {
	for _, m := range []func(*gorm.DB) error{
		vault.Migrate,
		debt.Migrate,
		event.Migrate,
		oracle.Migrate,
		token.Migrate,
	} {
		if err := m(db); err != nil {
			return err
		}
	}

	return nil
}
