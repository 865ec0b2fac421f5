package browser

import (
	"context"
	"sync"
	"time"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/internal/task/repository"
	"task-console/pkg/broadcast"
	pkgLog "task-console/pkg/log"
	"task-console/pkg/paginator"
	"task-console/pkg/serial"
)

// Options configures a browser.
type Options struct {
	PageSize        int
	BulkDeleteDelay time.Duration
}

type implBrowser struct {
	l      pkgLog.Logger
	repo   repository.TaskRepository
	runner *serial.Runner

	unsubscribe func()
	closeOnce   sync.Once

	mu       sync.Mutex
	tasks    []model.Task
	filtered []model.Task
	search   string
	pager    paginator.Pager
	sel      selection
	pending  task.PendingDelete
	bulk     bool
}

// New creates a browser and subscribes it to change notifications. Every
// notification triggers a full reload.
func New(l pkgLog.Logger, repo repository.TaskRepository, sub broadcast.Subscriber, opts Options) task.Browser {
	b := &implBrowser{
		l:      l,
		repo:   repo,
		runner: serial.New(opts.BulkDeleteDelay),
		pager:  paginator.New(opts.PageSize),
		sel:    newSelection(),
	}
	b.unsubscribe = sub.Subscribe(func(ctx context.Context) {
		_ = b.Reload(ctx)
	})
	return b
}

// Close stops listening for change notifications.
func (b *implBrowser) Close() {
	b.closeOnce.Do(b.unsubscribe)
}
