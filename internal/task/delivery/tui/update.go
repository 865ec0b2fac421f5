package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"task-console/internal/model"
	"task-console/internal/task"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg.String())
		default:
			return m.updateList(msg.String())
		}

	case tea.WindowSizeMsg:
		m.search.Width = msg.Width - 10

	case reloadedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("%d tasks", m.browser.Snapshot().TotalRecords)
		}
		m.clampCursor()

	case openedMsg:
		m.busy = false
		if msg.session == nil {
			m.status = fmt.Sprintf("open failed: %v", msg.err)
			return m, nil
		}
		m.form = newForm(msg.session, m.dates)
		m.mode = modeForm
		if msg.err != nil {
			m.status = fmt.Sprintf("load failed: %v (saving is disabled)", msg.err)
		} else {
			m.status = fmt.Sprintf("%s task: tab to move, enter to save, esc to cancel", msg.session.Mode())
		}

	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.form = nil
		m.mode = modeList
		if msg.created {
			m.status = "Added task " + msg.task.ID
		} else {
			m.status = "Saved task " + msg.task.ID
		}
		m.clampCursor()

	case deletedMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
		case msg.kind == task.DeleteBulk:
			m.status = fmt.Sprintf("Deleted %d, failed %d", len(msg.report.Deleted), len(msg.report.Failed))
		default:
			m.status = "Deleted task"
		}
		m.clampCursor()
	}
	return m, nil
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	v := m.browser.Snapshot()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(v.Tasks)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n", "right":
		m.browser.NextPage()
		m.cursor = 0
	case "p", "left":
		m.browser.PrevPage()
		m.cursor = 0
	case "g":
		m.browser.FirstPage()
		m.cursor = 0
	case "G":
		m.browser.LastPage()
		m.cursor = 0
	case "+":
		m.browser.IncreasePageSize()
		m.cursor = 0
	case "-":
		m.browser.DecreasePageSize()
		m.cursor = 0
	case "/":
		m.mode = modeSearch
		m.search.SetValue(v.SearchText)
		m.search.Focus()
		m.status = "Search: enter to apply, esc to cancel"
	case " ":
		if t, ok := m.current(v); ok {
			m.browser.Toggle(t.ID, !t.Selected)
		}
	case "A":
		m.browser.ToggleAll(!v.AllSelected)
	case "d":
		t, ok := m.current(v)
		if !ok {
			return m, nil
		}
		if err := m.browser.RequestDelete(t.ID); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeConfirm
		m.status = fmt.Sprintf("Delete the task assigned to %q? y/n", t.AssignedTo)
	case "D":
		if err := m.browser.RequestBulkDelete(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeConfirm
		m.status = fmt.Sprintf("Delete %d selected tasks? y/n", m.browser.Snapshot().Pending.Count)
	case "a":
		m.busy = true
		return m, m.openCmd("")
	case "e", "enter":
		t, ok := m.current(v)
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.openCmd(t.ID)
	case "r":
		m.busy = true
		m.status = "Reloading..."
		return m, m.reloadCmd()
	}
	m.clampCursor()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.search.Blur()
		m.status = "Search cancelled"
		return m, nil
	case "enter":
		m.browser.Search(m.search.Value())
		m.mode = modeList
		m.search.Blur()
		m.cursor = 0
		m.status = fmt.Sprintf("%d matching tasks", m.browser.Snapshot().TotalRecords)
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeList
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form.session.Cancel(m.ctx)
		m.form = nil
		m.mode = modeList
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "down":
		m.form.move(1)
		return m, nil
	case "shift+tab", "up":
		m.form.move(-1)
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		if m.form.session.LoadErr() != nil {
			m.status = task.ErrDraftNotLoaded.Error()
			return m, nil
		}
		d, err := m.form.draft(m.now())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.form.session.SetDraft(d)
		m.busy = true
		m.status = "Saving..."
		return m, m.submitCmd(m.form.session)
	default:
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		kind := m.browser.Snapshot().Pending.Kind
		m.mode = modeList
		m.busy = true
		if kind == task.DeleteBulk {
			m.status = "Deleting selected tasks..."
		} else {
			m.status = "Deleting..."
		}
		return m, m.confirmCmd(kind)
	case "n", "N", "esc":
		m.browser.CancelDelete()
		m.mode = modeList
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m Model) current(v task.View) (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(v.Tasks) {
		return model.Task{}, false
	}
	return v.Tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.browser.Snapshot().Tasks)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
