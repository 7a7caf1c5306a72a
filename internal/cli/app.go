package cli

import (
	"io"

	log "github.com/sirupsen/logrus"

	"todo-api/internal/config"
	"todo-api/internal/repository/sqlite"
)

// StoreOpener opens the database a configuration points at.
type StoreOpener func(cfg *config.Config) (*sqlite.Store, error)

// DefaultStoreOpener opens the store through config.StoreFactory, so the
// testing environment gets an in-memory database.
func DefaultStoreOpener(cfg *config.Config) (*sqlite.Store, error) {
	return config.NewStoreFactory(cfg).CreateStore()
}

// App represents the main CLI application once configuration is loaded
type App struct {
	config *config.Config
	logger *log.Logger
	stores StoreOpener
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, logger *log.Logger, stores StoreOpener, out io.Writer) *App {
	return &App{
		config: cfg,
		logger: logger,
		stores: stores,
		out:    out,
	}
}

func (a *App) openStore() (*sqlite.Store, error) {
	store, err := a.stores(a.config)
	if err != nil {
		return nil, err
	}
	a.logger.WithFields(log.Fields{
		"path":        store.Path(),
		"environment": a.config.Application.Environment,
	}).Debug("opened database")
	return store, nil
}
