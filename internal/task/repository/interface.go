package repository

import (
	"context"

	"task-console/internal/model"
)

// TaskRepository is the interface for remote task resource operations.
// Every call is a single request: no retry, no backoff, no client-side timeout.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
