package mockapi

import (
	"fmt"

	"task-console/internal/task/repository"
	pkgLog "task-console/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a TaskRepository backed by the task REST API.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	if client == nil {
		panic("task/repository/mockapi: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/mockapi.%s", method)
}
