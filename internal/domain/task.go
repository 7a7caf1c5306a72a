package domain

// Task is one record of a collection. Detail is the text stored in the
// collection's Field, whatever that field is called on the wire.
type Task struct {
	ID     int64
	Detail string
}

// TaskView is the JSON representation served by the tasks collection.
type TaskView struct {
	ID     int64  `json:"id"`
	Detail string `json:"detail"`
}

// TodoView is the JSON representation served by the todos collection.
type TodoView struct {
	ID   int64  `json:"id"`
	Task string `json:"task"`
}
