package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"todo-api/internal/errors"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Options tunes how the database file is opened.
type Options struct {
	// BusyTimeout is how long SQLite waits on a locked database before
	// failing a statement. Zero leaves the engine default.
	BusyTimeout time.Duration
}

// Store owns the connection pool for one embedded database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path. Connection-level
// pragmas are passed through the DSN so every pooled connection gets them.
func Open(path string, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite", buildDSN(path, opts))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Each connection to :memory: is its own database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("open database", err)
	}

	return &Store{db: db, path: path}, nil
}

func buildDSN(path string, opts Options) string {
	var pragmas []string
	if opts.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("_pragma=busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	}
	if path != MemoryPath {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	if len(pragmas) == 0 {
		return path
	}
	return path + "?" + strings.Join(pragmas, "&")
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// InitSchema creates every table that does not exist yet. It is idempotent
// and safe to run on each process start.
func (s *Store) InitSchema(ctx context.Context, tables ...Table) error {
	for _, table := range tables {
		if err := table.Validate(); err != nil {
			return errors.NewDatabaseError("init schema", err)
		}
		if _, err := Execute(ctx, s.db, createTableStatement(table)); err != nil {
			return err
		}
	}
	return nil
}

func createTableStatement(t Table) string {
	return fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		%s TEXT
	)`, t.Name, t.Column)
}

// Session starts a request-scoped session on the pool.
func (s *Store) Session() *Session {
	return &Session{db: s.db}
}

// DAO returns a data-access object for table bound to a fresh session.
// Callers must Close it to release the session's connection.
func (s *Store) DAO(table Table) *TaskDAO {
	return NewTaskDAO(s.Session(), table)
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("ping", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
