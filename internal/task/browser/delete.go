package browser

import (
	"context"
	"sync/atomic"

	"task-console/internal/task"
	"task-console/pkg/serial"
)

// RequestDelete arms a single delete of id. Nothing is sent until ConfirmDelete.
func (b *implBrowser) RequestDelete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.filtered {
		if t.ID == id {
			b.pending = task.PendingDelete{Kind: task.DeleteSingle, TaskID: id, Name: t.AssignedTo}
			return nil
		}
	}
	return task.ErrTaskNotFound
}

// RequestBulkDelete arms a delete of every selected task.
func (b *implBrowser) RequestBulkDelete() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bulk {
		return task.ErrBulkDeleteRunning
	}
	if b.sel.len() == 0 {
		return task.ErrEmptySelection
	}
	b.pending = task.PendingDelete{Kind: task.DeleteBulk, Count: b.sel.len()}
	return nil
}

func (b *implBrowser) CancelDelete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = task.PendingDelete{}
}

// ClaimDelete consumes the armed deletion under the lock. A bulk claim takes
// the selection snapshot and marks the walk as running.
func (b *implBrowser) ClaimDelete() (task.DeleteJob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.pending
	switch p.Kind {
	case task.DeleteSingle:
		b.pending = task.PendingDelete{}
		return &deleteJob{b: b, kind: task.DeleteSingle, ids: []string{p.TaskID}}, nil

	case task.DeleteBulk:
		if b.bulk {
			return nil, task.ErrBulkDeleteRunning
		}
		b.pending = task.PendingDelete{}
		b.bulk = true
		return &deleteJob{b: b, kind: task.DeleteBulk, ids: b.sel.ids()}, nil

	default:
		return nil, task.ErrNoPendingDelete
	}
}

// ConfirmDelete runs the armed deletion. The confirmation is consumed whether
// or not the deletion succeeds.
func (b *implBrowser) ConfirmDelete(ctx context.Context) (task.BulkDeleteReport, error) {
	job, err := b.ClaimDelete()
	if err != nil {
		return task.BulkDeleteReport{}, err
	}
	return job.Run(ctx)
}

type deleteJob struct {
	b    *implBrowser
	kind task.DeleteKind
	ids  []string
	ran  atomic.Bool
}

func (j *deleteJob) Kind() task.DeleteKind { return j.kind }

func (j *deleteJob) IDs() []string { return append([]string(nil), j.ids...) }

func (j *deleteJob) Run(ctx context.Context) (task.BulkDeleteReport, error) {
	if !j.ran.CompareAndSwap(false, true) {
		return task.BulkDeleteReport{}, task.ErrNoPendingDelete
	}
	if j.kind == task.DeleteSingle {
		return j.b.deleteOne(ctx, j.ids[0])
	}
	return j.b.deleteMany(ctx, j.ids), nil
}

func (b *implBrowser) deleteOne(ctx context.Context, id string) (task.BulkDeleteReport, error) {
	if err := b.repo.DeleteTask(ctx, id); err != nil {
		b.l.Errorf(ctx, "task/browser.ConfirmDelete: delete %s: %v", id, err)
		return task.BulkDeleteReport{Failed: []string{id}}, err
	}

	b.mu.Lock()
	b.removeLocked(id)
	b.sel.remove(id)
	b.mu.Unlock()

	b.l.Infof(ctx, "task/browser.ConfirmDelete: deleted %s", id)
	return task.BulkDeleteReport{Deleted: []string{id}}, nil
}

// deleteMany walks ids one request at a time. Failures are logged and
// skipped. When the walk completes the selection is cleared; if ctx ends it
// early, the ids that were never attempted stay selected.
func (b *implBrowser) deleteMany(ctx context.Context, ids []string) task.BulkDeleteReport {
	rep := serial.Run(ctx, b.runner, ids, func(ctx context.Context, id string) error {
		if err := b.repo.DeleteTask(ctx, id); err != nil {
			b.l.Errorf(ctx, "task/browser.ConfirmDelete: bulk delete %s: %v", id, err)
			return err
		}

		b.mu.Lock()
		b.removeLocked(id)
		b.mu.Unlock()
		return nil
	})

	b.mu.Lock()
	b.sel.reset(rep.Skipped)
	b.bulk = false
	b.mu.Unlock()

	b.l.Infof(ctx, "task/browser.ConfirmDelete: bulk deleted=%d failed=%d skipped=%d",
		len(rep.Done), len(rep.Failed), len(rep.Skipped))

	return task.BulkDeleteReport{
		Deleted: rep.Done,
		Failed:  rep.Failed,
		Skipped: rep.Skipped,
	}
}
