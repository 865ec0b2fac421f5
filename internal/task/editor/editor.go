package editor

import (
	"context"
	"sync"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/internal/task/repository"
)

func (e *implEditor) Open(ctx context.Context, id string) (task.EditorSession, error) {
	s := &session{
		e:     e,
		id:    id,
		draft: model.NewDraft(e.now()),
	}
	if id == "" {
		s.mode = task.ModeCreate
		return s, nil
	}

	s.mode = task.ModeEdit
	s.draft.ID = id

	t, err := e.repo.GetTask(ctx, id)
	if err != nil {
		e.l.Errorf(ctx, "task/editor.Open: load %s: %v", id, err)
		s.loadErr = err
		return s, err
	}
	s.draft = t
	s.draft.ID = id
	return s, nil
}

type session struct {
	e    *implEditor
	mode task.Mode
	id   string

	mu      sync.Mutex
	draft   model.Task
	loadErr error
	closed  bool
}

func (s *session) Mode() task.Mode { return s.mode }

func (s *session) ID() string { return s.id }

func (s *session) Draft() model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the editable fields. The id stays the one fixed at Open.
func (s *session) SetDraft(t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.draft.ID
	t.Selected = false
	s.draft = t
}

func (s *session) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *session) Submit(ctx context.Context) (model.Task, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Task{}, task.ErrSessionClosed
	}
	if s.loadErr != nil {
		s.mu.Unlock()
		return model.Task{}, task.ErrDraftNotLoaded
	}
	draft := s.draft
	s.mu.Unlock()

	var (
		saved model.Task
		err   error
	)
	switch s.mode {
	case task.ModeEdit:
		saved, err = s.e.repo.UpdateTask(ctx, repository.NewUpdateTaskOptions(s.id, draft))
	default:
		saved, err = s.e.repo.CreateTask(ctx, repository.NewCreateTaskOptions(draft))
	}
	if err != nil {
		s.e.l.Errorf(ctx, "task/editor.Submit: %s %q: %v", s.mode, s.id, err)
		return model.Task{}, err
	}

	s.mu.Lock()
	s.draft = saved
	s.closed = true
	s.mu.Unlock()

	s.e.l.Infof(ctx, "task/editor.Submit: %s saved task %s", s.mode, saved.ID)

	// Listeners reload before the list is shown so a last-page hint lands on fresh data.
	s.e.notifier.Notify(ctx)
	s.e.nav.ShowList(ctx, model.ListHint{LastPage: s.mode == task.ModeCreate})

	return saved, nil
}

func (s *session) Cancel(ctx context.Context) {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.e.nav.ShowList(ctx, model.ListHint{})
}
