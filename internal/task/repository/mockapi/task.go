package mockapi

import (
	"context"
	"fmt"

	"task-console/internal/model"
	"task-console/internal/task/repository"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	items, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(items))
	for i := range items {
		r.warnBadDueDate(ctx, &items[i])
		tasks = append(tasks, toModel(&items[i]))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, repository.ErrMissingID
	}

	item, err := r.client.GetTask(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("GetTask"), id, err)
		return model.Task{}, r.mapErr(err)
	}
	r.warnBadDueDate(ctx, item)
	return toModel(item), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	item, err := r.client.CreateTask(ctx, TaskRequest{
		AssignedTo: opt.AssignedTo,
		Status:     opt.Status,
		DueDate:    opt.DueDate,
		Priority:   opt.Priority,
		Comments:   opt.Comments,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, err
	}
	return toModel(item), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if opt.ID == "" {
		return model.Task{}, repository.ErrMissingID
	}

	item, err := r.client.UpdateTask(ctx, opt.ID, TaskRequest{
		AssignedTo: opt.AssignedTo,
		Status:     opt.Status,
		DueDate:    opt.DueDate,
		Priority:   opt.Priority,
		Comments:   opt.Comments,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("UpdateTask"), opt.ID, err)
		return model.Task{}, r.mapErr(err)
	}
	return toModel(item), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return repository.ErrMissingID
	}

	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("DeleteTask"), id, err)
		return r.mapErr(err)
	}
	return nil
}

// mapErr tags 404 answers with repository.ErrNotFound and keeps the API detail.
func (r *implRepository) mapErr(err error) error {
	if IsNotFound(err) {
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	}
	return err
}

func (r *implRepository) warnBadDueDate(ctx context.Context, t *Task) {
	if t.BadDueDate != "" {
		r.l.Warnf(ctx, "%s: task %s has unreadable dueDate %q, using zero time", r.dsn("decode"), t.ID, t.BadDueDate)
	}
}

// toModel converts an API task into the internal model.Task.
func toModel(t *Task) model.Task {
	return model.Task{
		ID:         t.ID,
		AssignedTo: t.AssignedTo,
		Status:     t.Status,
		DueDate:    t.DueDate,
		Priority:   t.Priority,
		Comments:   t.Comments,
	}
}
