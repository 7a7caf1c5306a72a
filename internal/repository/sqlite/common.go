package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"todo-api/internal/errors"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// HandleDatabaseError classifies a driver failure during operation.
func HandleDatabaseError(operation string, err error) *errors.AppError {
	return errors.NewDatabaseError(operation, err)
}

// HandleNoRowsError turns sql.ErrNoRows into a not-found error for entity
// and returns any other error unchanged.
func HandleNoRowsError(err error, entity string, id string) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError(entity, id)
	}
	return err
}

// Execute runs a statement that returns no rows.
func Execute(ctx context.Context, q Querier, query string, args ...interface{}) (sql.Result, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("execute query", err)
	}
	return result, nil
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error) {
	result, err := Execute(ctx, q, query, args...)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError("get last insert ID", err)
	}

	return id, nil
}

// QuerySingle executes a query that returns a single row and scans it
func QuerySingle[T any](ctx context.Context, q Querier, query string, scanFunc func(Scanner) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	row := q.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err == nil {
		return result, nil
	}
	if err = HandleNoRowsError(err, entityType, id); errors.KindOf(err) == errors.KindNotFound {
		return nil, err
	}
	return nil, HandleDatabaseError("scan "+entityType, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, q Querier, query string, scanFunc func(Rows) ([]*T, error), entityType string, args ...interface{}) ([]*T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}

	return results, nil
}
