package config

import (
	"fmt"
	"os"

	"todo-api/internal/repository/sqlite"
)

// StoreFactory creates database stores based on the configured environment
type StoreFactory struct {
	config *Config
}

// NewStoreFactory creates a new store factory for the given configuration
func NewStoreFactory(config *Config) *StoreFactory {
	return &StoreFactory{config: config}
}

// CreateStore opens the store the configuration points at. The testing
// environment always uses an in-memory database; the others use the
// configured file, creating its directory when missing.
func (f *StoreFactory) CreateStore() (*sqlite.Store, error) {
	opts := sqlite.Options{BusyTimeout: f.config.Database.BusyTimeout}

	if f.config.IsInMemory() {
		store, err := sqlite.Open(sqlite.MemoryPath, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
		}
		return store, nil
	}

	dir := f.config.Database.Dir
	if err := os.MkdirAll(dir, os.FileMode(f.config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	store, err := sqlite.Open(f.config.GetDatabasePath(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", f.config.Application.Environment, err)
	}
	return store, nil
}
