package editor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/internal/task/editor"
	"task-console/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	getTask model.Task
	getErr  error
	saveErr error

	created []repository.CreateTaskOptions
	updated []repository.UpdateTaskOptions
}

func (m *mockRepo) ListTasks(ctx context.Context) ([]model.Task, error) { return nil, nil }

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	if m.getErr != nil {
		return model.Task{}, m.getErr
	}
	return m.getTask, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.created = append(m.created, opt)
	if m.saveErr != nil {
		return model.Task{}, m.saveErr
	}
	return model.Task{ID: "99", AssignedTo: opt.AssignedTo, Status: opt.Status, Priority: opt.Priority}, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updated = append(m.updated, opt)
	if m.saveErr != nil {
		return model.Task{}, m.saveErr
	}
	return model.Task{ID: opt.ID, AssignedTo: opt.AssignedTo, Status: opt.Status, Priority: opt.Priority}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error { return nil }

// recorder captures notify and navigation calls in order.
type recorder struct {
	events []string
	hints  []model.ListHint
}

func (r *recorder) Notify(ctx context.Context) { r.events = append(r.events, "notify") }

func (r *recorder) ShowList(ctx context.Context, hint model.ListHint) {
	r.events = append(r.events, "list")
	r.hints = append(r.hints, hint)
}

func setup(repo *mockRepo) (task.Editor, *recorder) {
	rec := &recorder{}
	return editor.New(&mockLogger{}, repo, rec, rec), rec
}

func TestOpen(t *testing.T) {
	t.Run("Create mode starts from a blank draft", func(t *testing.T) {
		ed, _ := setup(&mockRepo{})
		before := time.Now()

		s, err := ed.Open(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Mode() != task.ModeCreate || s.ID() != "" {
			t.Errorf("expected create mode without id, got %s %q", s.Mode(), s.ID())
		}
		d := s.Draft()
		if d.Status != model.StatusNotStarted || d.Priority != model.PriorityNormal {
			t.Errorf("unexpected defaults: %+v", d)
		}
		if d.AssignedTo != "" || d.Comments != "" || d.ID != "" {
			t.Errorf("expected empty text fields: %+v", d)
		}
		if d.DueDate.Before(before) || d.DueDate.After(time.Now()) {
			t.Errorf("expected due date to be now, got %v", d.DueDate)
		}
	})

	t.Run("Edit mode loads the task", func(t *testing.T) {
		repo := &mockRepo{getTask: model.Task{ID: "7", AssignedTo: "Ann", Status: model.StatusCompleted}}
		ed, _ := setup(repo)

		s, err := ed.Open(context.Background(), "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Mode() != task.ModeEdit || s.ID() != "7" {
			t.Errorf("expected edit mode for 7, got %s %q", s.Mode(), s.ID())
		}
		if s.Draft().AssignedTo != "Ann" {
			t.Errorf("expected loaded draft, got %+v", s.Draft())
		}
	})

	t.Run("Edit mode load failure keeps blank draft", func(t *testing.T) {
		ed, _ := setup(&mockRepo{getErr: repository.ErrNotFound})

		s, err := ed.Open(context.Background(), "404")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if s == nil {
			t.Fatal("expected a usable session")
		}
		if s.Draft().Status != model.StatusNotStarted || s.Draft().AssignedTo != "" {
			t.Errorf("expected blank draft, got %+v", s.Draft())
		}
		if !errors.Is(s.LoadErr(), repository.ErrNotFound) {
			t.Errorf("expected LoadErr to report ErrNotFound, got %v", s.LoadErr())
		}
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Create notifies then shows last page", func(t *testing.T) {
		repo := &mockRepo{}
		ed, rec := setup(repo)

		s, _ := ed.Open(ctx, "")
		d := s.Draft()
		d.AssignedTo = "Bob"
		s.SetDraft(d)

		saved, err := s.Submit(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != "99" || s.Draft().ID != "99" {
			t.Errorf("expected draft replaced by persisted task, got %+v", s.Draft())
		}
		if len(repo.created) != 1 || repo.created[0].AssignedTo != "Bob" {
			t.Errorf("expected one create for Bob, got %+v", repo.created)
		}
		if len(rec.events) != 2 || rec.events[0] != "notify" || rec.events[1] != "list" {
			t.Errorf("expected notify before list, got %v", rec.events)
		}
		if !rec.hints[0].LastPage {
			t.Errorf("expected last-page hint after create")
		}
	})

	t.Run("Update keeps id and shows list without hint", func(t *testing.T) {
		repo := &mockRepo{getTask: model.Task{ID: "5", AssignedTo: "Ann"}}
		ed, rec := setup(repo)

		s, _ := ed.Open(ctx, "5")
		d := s.Draft()
		d.ID = "other"
		d.Status = model.StatusInProgress
		s.SetDraft(d)

		if _, err := s.Submit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.updated) != 1 || repo.updated[0].ID != "5" || repo.updated[0].Status != model.StatusInProgress {
			t.Errorf("unexpected update: %+v", repo.updated)
		}
		if len(repo.created) != 0 {
			t.Errorf("edit mode must not create")
		}
		if len(rec.hints) != 1 || rec.hints[0].LastPage {
			t.Errorf("expected plain list hint, got %+v", rec.hints)
		}
	})

	t.Run("Failure stays open without notify", func(t *testing.T) {
		repo := &mockRepo{saveErr: errors.New("boom")}
		ed, rec := setup(repo)

		s, _ := ed.Open(ctx, "")
		if _, err := s.Submit(ctx); err == nil {
			t.Fatal("expected error")
		}
		if len(rec.events) != 0 {
			t.Errorf("expected no notify or navigation, got %v", rec.events)
		}

		repo.saveErr = nil
		if _, err := s.Submit(ctx); err != nil {
			t.Errorf("expected session to stay usable, got %v", err)
		}
		if len(repo.created) != 2 {
			t.Errorf("expected two create attempts, got %d", len(repo.created))
		}
	})

	t.Run("Failed load refuses to submit", func(t *testing.T) {
		repo := &mockRepo{getErr: errors.New("down")}
		ed, rec := setup(repo)

		s, _ := ed.Open(ctx, "3")
		if _, err := s.Submit(ctx); !errors.Is(err, task.ErrDraftNotLoaded) {
			t.Fatalf("expected ErrDraftNotLoaded, got %v", err)
		}
		if len(repo.updated) != 0 || len(rec.events) != 0 {
			t.Errorf("expected no update and no events")
		}
	})

	t.Run("Closed session", func(t *testing.T) {
		ed, _ := setup(&mockRepo{})

		s, _ := ed.Open(ctx, "")
		if _, err := s.Submit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := s.Submit(ctx); !errors.Is(err, task.ErrSessionClosed) {
			t.Errorf("expected ErrSessionClosed, got %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	ed, rec := setup(repo)

	s, _ := ed.Open(ctx, "")
	s.Cancel(ctx)

	if len(rec.events) != 1 || rec.events[0] != "list" || rec.hints[0].LastPage {
		t.Errorf("expected a plain list navigation only, got %v %+v", rec.events, rec.hints)
	}
	if len(repo.created) != 0 {
		t.Errorf("cancel must not save")
	}
	if _, err := s.Submit(ctx); !errors.Is(err, task.ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed after cancel, got %v", err)
	}
}
