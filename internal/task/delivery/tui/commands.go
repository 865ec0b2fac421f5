package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"task-console/internal/model"
	"task-console/internal/task"
)

type reloadedMsg struct{ err error }

type openedMsg struct {
	session task.EditorSession
	err     error
}

type savedMsg struct {
	task    model.Task
	created bool
	err     error
}

type deletedMsg struct {
	kind   task.DeleteKind
	report task.BulkDeleteReport
	err    error
}

func (m Model) reloadCmd() tea.Cmd {
	ctx, b := m.ctx, m.browser
	return func() tea.Msg {
		return reloadedMsg{err: b.Reload(ctx)}
	}
}

func (m Model) openCmd(id string) tea.Cmd {
	ctx, ed := m.ctx, m.editor
	return func() tea.Msg {
		s, err := ed.Open(ctx, id)
		return openedMsg{session: s, err: err}
	}
}

func (m Model) submitCmd(s task.EditorSession) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		t, err := s.Submit(ctx)
		return savedMsg{task: t, created: s.Mode() == task.ModeCreate, err: err}
	}
}

func (m Model) confirmCmd(kind task.DeleteKind) tea.Cmd {
	ctx, b := m.ctx, m.browser
	return func() tea.Msg {
		rep, err := b.ConfirmDelete(ctx)
		return deletedMsg{kind: kind, report: rep, err: err}
	}
}
