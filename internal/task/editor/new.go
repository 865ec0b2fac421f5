package editor

import (
	"time"

	"task-console/internal/task"
	"task-console/internal/task/repository"
	"task-console/pkg/broadcast"
	pkgLog "task-console/pkg/log"
)

type implEditor struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	notifier broadcast.Notifier
	nav      task.Navigator
	now      func() time.Time
}

// New creates the task editor. The notifier is fired after every successful
// save and nav is asked to show the list once a session ends.
func New(l pkgLog.Logger, repo repository.TaskRepository, notifier broadcast.Notifier, nav task.Navigator) task.Editor {
	return &implEditor{
		l:        l,
		repo:     repo,
		notifier: notifier,
		nav:      nav,
		now:      time.Now,
	}
}
