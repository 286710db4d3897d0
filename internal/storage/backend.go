package storage

import (
	"errors"
	"fmt"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
	"regexp"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("invalid key")
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)

// Backend is a persistent byte-oriented key-value store.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Keys() ([]string, error)
	Close() error
}

func validKey(key string) error {
	if !keyPattern.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// NewBackendProvider opens the backend selected by storage.driver.
func NewBackendProvider(conf *structures.Config, logger providers.Logger) (Backend, error) {
	switch conf.Storage.Driver {
	case "sqlite":
		logger.Infof(providers.TypeStorage, "Using sqlite store %s", conf.Storage.SQLitePath)
		return NewSQLiteBackend(conf.Storage.SQLitePath)
	default:
		logger.Infof(providers.TypeStorage, "Using file store %s", conf.Storage.Dir)
		return NewFileBackend(conf.Storage.Dir)
	}
}
