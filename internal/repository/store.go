package repository

import (
	"context"
	"errors"
	"fmt"
)

// Storage drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Errors returned by Open and the backends.
var (
	ErrUnknownDriver = errors.New("unknown store driver")
	ErrInvalidKey    = errors.New("invalid storage key")
)

// KeyValueStore is a durable string key-value store.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// StoreConfig selects and locates a KeyValueStore backend.
type StoreConfig struct {
	Driver string
	// Path is the directory for the file driver and the database file for sqlite.
	Path string
	// DSN is the MySQL data source name.
	DSN string
}

// Open creates the backend named by cfg.Driver, preparing its schema if needed.
func Open(ctx context.Context, cfg StoreConfig) (KeyValueStore, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		return NewFileStore(cfg.Path)
	case DriverSQLite:
		return NewSQLiteStore(cfg.Path)
	case DriverMySQL:
		db, err := NewDB(cfg.DSN)
		if err != nil {
			return nil, err
		}
		store := NewMySQLStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
