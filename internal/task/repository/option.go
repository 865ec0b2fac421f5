package repository

import (
	"time"

	"task-console/internal/model"
)

// CreateTaskOptions holds the fields sent when creating a task. The server assigns the id.
type CreateTaskOptions struct {
	AssignedTo string
	Status     string
	DueDate    time.Time
	Priority   string
	Comments   string
}

// UpdateTaskOptions holds the full replacement for an existing task.
type UpdateTaskOptions struct {
	ID         string
	AssignedTo string
	Status     string
	DueDate    time.Time
	Priority   string
	Comments   string
}

// NewCreateTaskOptions copies the persisted fields of t.
func NewCreateTaskOptions(t model.Task) CreateTaskOptions {
	return CreateTaskOptions{
		AssignedTo: t.AssignedTo,
		Status:     t.Status,
		DueDate:    t.DueDate,
		Priority:   t.Priority,
		Comments:   t.Comments,
	}
}

// NewUpdateTaskOptions copies the persisted fields of t under id.
func NewUpdateTaskOptions(id string, t model.Task) UpdateTaskOptions {
	return UpdateTaskOptions{
		ID:         id,
		AssignedTo: t.AssignedTo,
		Status:     t.Status,
		DueDate:    t.DueDate,
		Priority:   t.Priority,
		Comments:   t.Comments,
	}
}
