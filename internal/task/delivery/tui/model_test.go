package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"task-console/internal/model"
	"task-console/internal/task/browser"
	"task-console/internal/task/editor"
	"task-console/internal/task/repository"
	"task-console/pkg/broadcast"
	"task-console/pkg/datemath"
	"task-console/pkg/log"
)

type memRepo struct {
	mu      sync.Mutex
	tasks   []model.Task
	nextID  int
	saveErr error
}

func (r *memRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Task(nil), r.tasks...), nil
}

func (r *memRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *memRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return model.Task{}, r.saveErr
	}
	r.nextID++
	t := model.Task{ID: strconv.Itoa(r.nextID), AssignedTo: opt.AssignedTo, Status: opt.Status, Priority: opt.Priority, DueDate: opt.DueDate}
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *memRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, errors.New("not used")
}

func (r *memRepo) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestModel(t *testing.T, n int) (Model, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	for i := 0; i < n; i++ {
		repo.CreateTask(context.Background(), repository.CreateTaskOptions{AssignedTo: "User " + strconv.Itoa(i+1), Status: model.StatusNotStarted})
	}

	ctx := context.Background()
	l := log.NewNop()
	sig := broadcast.New()
	b := browser.New(l, repo, sig, browser.Options{PageSize: 10})
	t.Cleanup(b.Close)

	dates, _ := datemath.NewParser("UTC")
	m := New(ctx, l, b, editor.New(l, repo, sig, b), dates)
	m = run(t, m, m.Init())
	return m, repo
}

// run executes cmd synchronously and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, string(r))
	}
	return m
}

func TestListNavigation(t *testing.T) {
	m, _ := newTestModel(t, 12)

	if !strings.Contains(m.View(), "Page 1/2") {
		t.Fatalf("expected page 1/2 in view:\n%s", m.View())
	}

	m, _ = press(t, m, "n")
	if v := m.browser.Snapshot(); v.Page != 2 || len(v.Tasks) != 2 {
		t.Errorf("expected page 2 with 2 tasks, got %d with %d", v.Page, len(v.Tasks))
	}

	m, _ = press(t, m, "g")
	m, _ = press(t, m, "+")
	if v := m.browser.Snapshot(); v.PageSize != 11 || v.Page != 1 {
		t.Errorf("expected page size 11 on page 1, got %d on %d", v.PageSize, v.Page)
	}
}

func TestSearchMode(t *testing.T) {
	m, _ := newTestModel(t, 12)

	m, _ = press(t, m, "/")
	if m.mode != modeSearch {
		t.Fatalf("expected search mode")
	}
	m = typeText(t, m, "user 1")
	m, _ = press(t, m, "enter")

	if m.mode != modeList {
		t.Errorf("expected list mode after search")
	}
	if v := m.browser.Snapshot(); v.TotalRecords != 4 || v.SearchText != "user 1" {
		t.Errorf("expected 4 matches, got %d for %q", v.TotalRecords, v.SearchText)
	}
}

func TestAddTask(t *testing.T) {
	m, repo := newTestModel(t, 10)

	m, cmd := press(t, m, "a")
	m = run(t, m, cmd)
	if m.mode != modeForm || m.form == nil {
		t.Fatalf("expected form mode")
	}
	if got := m.form.inputs[fieldStatus].Value(); got != model.StatusNotStarted {
		t.Errorf("expected default status, got %q", got)
	}

	m = typeText(t, m, "Zed")

	t.Run("Failed save stays in form", func(t *testing.T) {
		repo.saveErr = errors.New("boom")
		next, cmd := press(t, m, "enter")
		next = run(t, next, cmd)
		if next.mode != modeForm || !strings.Contains(next.status, "save failed") {
			t.Errorf("expected visible failure in form, got mode %d status %q", next.mode, next.status)
		}
		repo.saveErr = nil
		m = next
	})

	m, cmd = press(t, m, "enter")
	m = run(t, m, cmd)

	if m.mode != modeList {
		t.Fatalf("expected list mode after save, status %q", m.status)
	}
	v := m.browser.Snapshot()
	if v.Page != 2 || len(v.Tasks) != 1 || v.Tasks[0].AssignedTo != "Zed" {
		t.Errorf("expected new task alone on last page, got page %d %+v", v.Page, v.Tasks)
	}
}

func TestEditCancel(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m, cmd := press(t, m, "e")
	m = run(t, m, cmd)
	if m.mode != modeForm || m.form.session.ID() != "1" {
		t.Fatalf("expected edit form for task 1")
	}
	if got := m.form.inputs[fieldAssignedTo].Value(); got != "User 1" {
		t.Errorf("expected loaded assignee, got %q", got)
	}

	m, _ = press(t, m, "esc")
	if m.mode != modeList || m.form != nil {
		t.Errorf("expected list mode after cancel")
	}
}

func TestDeleteFlow(t *testing.T) {
	m, repo := newTestModel(t, 3)

	m, _ = press(t, m, "d")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode")
	}
	m, _ = press(t, m, "n")
	if m.mode != modeList || len(repo.tasks) != 3 {
		t.Fatalf("expected cancel without delete")
	}

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "y")
	m = run(t, m, cmd)
	if len(repo.tasks) != 2 || m.browser.Snapshot().TotalRecords != 2 {
		t.Errorf("expected one task deleted, repo has %d", len(repo.tasks))
	}

	m, _ = press(t, m, " ")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, " ")
	if m.browser.Snapshot().SelectedCount != 2 {
		t.Fatalf("expected 2 selected, got %d", m.browser.Snapshot().SelectedCount)
	}

	m, _ = press(t, m, "D")
	m, cmd = press(t, m, "y")
	m = run(t, m, cmd)
	if len(repo.tasks) != 0 || m.browser.HasSelection() {
		t.Errorf("expected everything deleted and selection cleared, repo has %d", len(repo.tasks))
	}
	if !strings.Contains(m.status, "Deleted 2") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestFormDueDate(t *testing.T) {
	m, repo := newTestModel(t, 1)

	m, cmd := press(t, m, "a")
	m = run(t, m, cmd)

	m.form.inputs[fieldDueDate].SetValue("someday")
	m, cmd = press(t, m, "enter")
	if cmd != nil || m.mode != modeForm || !strings.Contains(m.status, "due date") {
		t.Fatalf("expected due date error in form, got mode %d status %q", m.mode, m.status)
	}

	m.form.inputs[fieldDueDate].SetValue("2026-12-24")
	m, cmd = press(t, m, "enter")
	m = run(t, m, cmd)
	if m.mode != modeList {
		t.Fatalf("expected save, status %q", m.status)
	}

	got := repo.tasks[len(repo.tasks)-1].DueDate.UTC()
	if got.Year() != 2026 || got.Month() != 12 || got.Day() != 24 {
		t.Errorf("expected due date 2026-12-24, got %v", got)
	}
}
