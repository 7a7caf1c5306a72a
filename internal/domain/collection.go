package domain

import (
	"todo-api/internal/repository/sqlite"
)

// Collection describes one task resource exposed over HTTP. Collections are
// semantically identical and differ only in naming.
type Collection struct {
	Name        string // URL segment
	Table       string
	Field       string // JSON property and column holding the task text
	Title       string // model name in documentation
	Noun        string // singular used in messages, e.g. "Todo 3 doesn't exist"
	Description string

	// View builds the JSON representation of a task in this collection.
	View func(Task) interface{}
}

// Tasks is served under /tasks/ with the text in "detail".
var Tasks = Collection{
	Name:        "tasks",
	Table:       "tasks",
	Field:       "detail",
	Title:       "Task",
	Noun:        "Task",
	Description: "Task operations",

	View: func(t Task) interface{} {
		return TaskView{ID: t.ID, Detail: t.Detail}
	},
}

// Todos is served under /todos/ with the text in "task".
var Todos = Collection{
	Name:        "todos",
	Table:       "todo",
	Field:       "task",
	Title:       "ToDo",
	Noun:        "Todo",
	Description: "To Do operations",

	View: func(t Task) interface{} {
		return TodoView{ID: t.ID, Task: t.Detail}
	},
}

// Collections returns every collection the API serves, in routing order.
func Collections() []Collection {
	return []Collection{Tasks, Todos}
}

// StorageTable returns the table definition backing the collection.
func (c Collection) StorageTable() sqlite.Table {
	return sqlite.Table{Name: c.Table, Column: c.Field, Entity: c.Noun}
}

// StorageTables returns the tables for every collection.
func StorageTables(collections ...Collection) []sqlite.Table {
	tables := make([]sqlite.Table, len(collections))
	for i, c := range collections {
		tables[i] = c.StorageTable()
	}
	return tables
}

// Views maps tasks to their representations. The result is never nil so an
// empty collection encodes as [].
func (c Collection) Views(tasks []Task) []interface{} {
	views := make([]interface{}, len(tasks))
	for i, task := range tasks {
		views[i] = c.View(task)
	}
	return views
}
