package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"todo-api/internal/errors"
)

type statements struct {
	all    string
	get    string
	insert string
	upsert string
	delete string
}

func newStatements(t Table) statements {
	return statements{
		all:    fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id ASC`, t.Column, t.Name),
		get:    fmt.Sprintf(`SELECT id, %s FROM %s WHERE id = ?`, t.Column, t.Name),
		insert: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?)`, t.Name, t.Column),
		upsert: fmt.Sprintf(`REPLACE INTO %s (id, %s) VALUES (?, ?)`, t.Name, t.Column),
		delete: fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.Name),
	}
}

// TaskDAO reads and writes one task table through a request-scoped session.
// Every method runs a single autocommitted statement.
type TaskDAO struct {
	session *Session
	table   Table
	stmts   statements
}

// NewTaskDAO creates a DAO for table that uses session for all statements.
func NewTaskDAO(session *Session, table Table) *TaskDAO {
	return &TaskDAO{
		session: session,
		table:   table,
		stmts:   newStatements(table),
	}
}

// All returns every row ordered by id. The slice is empty, not nil, when the
// table has no rows.
func (d *TaskDAO) All(ctx context.Context) ([]*Record, error) {
	q, err := d.session.Handle(ctx)
	if err != nil {
		return nil, err
	}
	records, err := QueryMultiple(ctx, q, d.stmts.all, ScanRecords, d.table.Name)
	return records, d.annotate(err)
}

// Get returns the row with id or a not-found error.
func (d *TaskDAO) Get(ctx context.Context, id int64) (*Record, error) {
	q, err := d.session.Handle(ctx)
	if err != nil {
		return nil, err
	}
	record, err := QuerySingle(ctx, q, d.stmts.get, ScanRecord, d.entity(), strconv.FormatInt(id, 10), id)
	return record, d.annotate(err)
}

// Create inserts a new row and returns it with the id assigned by storage.
func (d *TaskDAO) Create(ctx context.Context, text string) (*Record, error) {
	q, err := d.session.Handle(ctx)
	if err != nil {
		return nil, err
	}

	id, err := ExecuteWithLastInsertID(ctx, q, d.stmts.insert, text)
	if err != nil {
		return nil, d.annotate(err)
	}
	return NewRecord(id, text), nil
}

// Update replaces the row at id, creating it when it does not exist.
func (d *TaskDAO) Update(ctx context.Context, id int64, text string) (*Record, error) {
	q, err := d.session.Handle(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := Execute(ctx, q, d.stmts.upsert, id, text); err != nil {
		return nil, d.annotate(err)
	}
	return NewRecord(id, text), nil
}

// Delete removes the row at id. Deleting a missing row is not an error.
func (d *TaskDAO) Delete(ctx context.Context, id int64) error {
	q, err := d.session.Handle(ctx)
	if err != nil {
		return err
	}

	_, err = Execute(ctx, q, d.stmts.delete, id)
	return d.annotate(err)
}

// Close releases the session held by the DAO.
func (d *TaskDAO) Close() error {
	return d.session.Close()
}

func (d *TaskDAO) entity() string {
	if d.table.Entity != "" {
		return d.table.Entity
	}
	return d.table.Name
}

// annotate tags storage failures with the table they came from.
func (d *TaskDAO) annotate(err error) error {
	if appErr, ok := errors.As(err); ok && appErr.Kind == errors.KindDatabase {
		appErr.With("table", d.table.Name)
	}
	return err
}
