package sqlite

import (
	"context"
	"database/sql"

	"todo-api/internal/errors"
)

// Session hands out a single connection for the lifetime of one request.
// The connection is taken from the pool on first use and reused until Close.
// A Session is not safe for concurrent use.
type Session struct {
	db   *sql.DB
	conn *sql.Conn
}

// Handle returns the session's connection, acquiring it on the first call.
func (s *Session) Handle(ctx context.Context) (Querier, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("acquire connection", err)
	}
	s.conn = conn
	return conn, nil
}

// Close returns the connection to the pool if one was acquired. It is safe
// to call more than once.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn.Close()
}
