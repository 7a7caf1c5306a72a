package sqlite

import (
	"database/sql"
	"fmt"
	"regexp"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table names a single task table: an auto-increment id plus one text column.
type Table struct {
	Name   string // table name, e.g. "tasks"
	Column string // text column, e.g. "detail"
	Entity string // used in not-found messages, e.g. "Task"
}

// Validate ensures the table and column are plain SQL identifiers. They are
// interpolated into statements, so nothing else is accepted.
func (t Table) Validate() error {
	if !identifierPattern.MatchString(t.Name) {
		return fmt.Errorf("invalid table name %q", t.Name)
	}
	if !identifierPattern.MatchString(t.Column) {
		return fmt.Errorf("invalid column name %q", t.Column)
	}
	return nil
}

// Record is one row of a task table. Text is nullable at the storage level.
type Record struct {
	ID   int64
	Text sql.NullString
}

// NewRecord builds a record holding a non-null text value.
func NewRecord(id int64, text string) *Record {
	return &Record{ID: id, Text: sql.NullString{String: text, Valid: true}}
}
