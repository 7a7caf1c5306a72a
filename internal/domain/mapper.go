package domain

import (
	"todo-api/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromDatabase converts a database record to a domain Task. A NULL text
// column maps to an empty detail.
func (m *TaskMapper) FromDatabase(record sqlite.Record) Task {
	return Task{
		ID:     record.ID,
		Detail: record.Text.String,
	}
}

// FromDatabaseSlice converts database records to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(records []*sqlite.Record) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromDatabase(*record)
	}
	return tasks
}
