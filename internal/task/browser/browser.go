package browser

import (
	"context"
	"strings"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/pkg/paginator"
)

// Start performs the initial load and then honors a one-shot last-page hint.
func (b *implBrowser) Start(ctx context.Context, hint model.ListHint) error {
	err := b.Reload(ctx)
	b.ShowList(ctx, hint)
	return err
}

func (b *implBrowser) ShowList(ctx context.Context, hint model.ListHint) {
	if !hint.LastPage {
		return
	}

	b.mu.Lock()
	b.pager.Last()
	page := b.pager.Page
	b.mu.Unlock()

	b.l.Debugf(ctx, "task/browser.ShowList: jumped to last page %d", page)
}

// Reload refetches the whole collection. The search text is dropped and the
// filtered view starts again from the full list. On failure the current state
// is kept.
func (b *implBrowser) Reload(ctx context.Context) error {
	tasks, err := b.repo.ListTasks(ctx)
	if err != nil {
		b.l.Errorf(ctx, "task/browser.Reload: %v", err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tasks = tasks
	b.filtered = append([]model.Task(nil), tasks...)
	b.search = ""
	b.sel.retain(tasks)
	b.pager.Recalculate(len(b.filtered))

	b.l.Debugf(ctx, "task/browser.Reload: %d tasks", len(tasks))
	return nil
}

// Search filters the collection by assignee or status, case-insensitively,
// and returns to page 1.
func (b *implBrowser) Search(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.search = text
	b.filtered = filterTasks(b.tasks, text)
	b.pager.First()
	b.pager.Recalculate(len(b.filtered))
}

func (b *implBrowser) Snapshot() task.View {
	b.mu.Lock()
	defer b.mu.Unlock()

	paged := paginator.Slice(b.pager, b.filtered)
	for i := range paged {
		paged[i].Selected = b.sel.has(paged[i].ID)
	}

	return task.View{
		Tasks:         paged,
		SearchText:    b.search,
		Page:          b.pager.Page,
		PageSize:      b.pager.PageSize,
		TotalPages:    b.pager.TotalPages,
		TotalRecords:  b.pager.TotalRecords,
		SelectedCount: b.sel.len(),
		AllSelected:   b.allSelectedLocked(),
		BulkRunning:   b.bulk,
		Pending:       b.pending,
	}
}

func filterTasks(tasks []model.Task, text string) []model.Task {
	if text == "" {
		return append([]model.Task(nil), tasks...)
	}

	q := strings.ToLower(text)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.AssignedTo), q) ||
			strings.Contains(strings.ToLower(t.Status), q) {
			out = append(out, t)
		}
	}
	return out
}

// removeLocked drops id from the collection and the filtered view.
func (b *implBrowser) removeLocked(id string) {
	b.tasks = withoutID(b.tasks, id)
	b.filtered = withoutID(b.filtered, id)
	b.pager.Recalculate(len(b.filtered))
}

func withoutID(tasks []model.Task, id string) []model.Task {
	out := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
