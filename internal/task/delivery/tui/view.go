package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder
	v := m.browser.Snapshot()

	b.WriteString("Tasks")
	if v.SearchText != "" {
		fmt.Fprintf(&b, "  (search: %q)", v.SearchText)
	}
	b.WriteString("\n\n")

	if m.mode == modeForm && m.form != nil {
		b.WriteString(m.renderForm())
	} else {
		b.WriteString(m.renderList())
		fmt.Fprintf(&b, "\nPage %d/%d • %d per page • %d tasks • %d selected",
			v.Page, v.TotalPages, v.PageSize, v.TotalRecords, v.SelectedCount)
		if v.AllSelected {
			b.WriteString(" (all)")
		}
		if v.BulkRunning {
			b.WriteString(" • deleting...")
		}
		b.WriteString("\n")
	}

	if m.mode == modeSearch {
		b.WriteString("\n/")
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.help())

	return b.String()
}

func (m Model) renderList() string {
	v := m.browser.Snapshot()
	if len(v.Tasks) == 0 {
		return "No tasks. Press 'a' to add one.\n"
	}

	var b strings.Builder
	for i, t := range v.Tasks {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}
		checkbox := "[ ]"
		if t.Selected {
			checkbox = "[x]"
		}
		fmt.Fprintf(&b, "%s %s %-20s %-12s %-7s %s\n",
			cursor, checkbox, t.AssignedTo, t.Status, t.Priority, m.dates.Format(t.DueDate))
	}
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s task", m.form.session.Mode())
	if id := m.form.session.ID(); id != "" {
		fmt.Fprintf(&b, " %s", id)
	}
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		marker := " "
		if i == m.form.focus {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %-22s %s\n", marker, fieldLabels[i], m.form.inputs[i].View())
	}
	return b.String()
}

func (m Model) help() string {
	switch m.mode {
	case modeForm:
		return "tab/shift+tab move • enter save • esc cancel"
	case modeConfirm:
		return "y confirm • n cancel"
	case modeSearch:
		return "enter apply • esc cancel"
	default:
		return "j/k move • n/p page • g/G first/last • +/- page size • / search • space select • A all • d delete • D delete selected • a add • e edit • r reload • q quit"
	}
}
