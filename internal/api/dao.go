package api

import (
	"context"

	"todo-api/internal/domain"
	"todo-api/internal/repository/sqlite"
)

// TaskDAO is the storage contract the handlers depend on. Implementations
// hold a request-scoped handle that Close releases.
type TaskDAO interface {
	All(ctx context.Context) ([]*sqlite.Record, error)
	Get(ctx context.Context, id int64) (*sqlite.Record, error)
	Create(ctx context.Context, text string) (*sqlite.Record, error)
	Update(ctx context.Context, id int64, text string) (*sqlite.Record, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

// DAOFactory returns a DAO bound to a fresh session for the collection.
type DAOFactory func(domain.Collection) TaskDAO

// Pinger reports whether storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreDAOs returns a factory opening DAOs on store.
func StoreDAOs(store *sqlite.Store) DAOFactory {
	return func(c domain.Collection) TaskDAO {
		return store.DAO(c.StorageTable())
	}
}
