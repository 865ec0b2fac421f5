package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/pkg/datemath"
)

const (
	fieldAssignedTo = iota
	fieldStatus
	fieldDueDate
	fieldPriority
	fieldComments
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Assigned to",
	"Status",
	"Due date",
	"Priority",
	"Comments",
}

// form edits one editor session with one text input per field.
type form struct {
	session task.EditorSession
	dates   *datemath.Parser
	inputs  [fieldCount]textinput.Model
	focus   int
}

func newForm(s task.EditorSession, dates *datemath.Parser) *form {
	f := &form{session: s, dates: dates}
	d := s.Draft()
	values := [fieldCount]string{
		d.AssignedTo,
		d.Status,
		dates.Format(d.DueDate),
		d.Priority,
		d.Comments,
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 256
		ti.Width = 40
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldStatus].Placeholder = strings.Join(model.Statuses, " / ")
	f.inputs[fieldPriority].Placeholder = strings.Join(model.Priorities, " / ")
	f.inputs[fieldDueDate].Placeholder = "YYYY-MM-DD, tomorrow, in 3 days, next friday"
	f.inputs[0].Focus()
	return f
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// draft turns the inputs into a task. A due date keeps the time of day of
// the current draft; an empty due date leaves it unchanged.
func (f *form) draft(now time.Time) (model.Task, error) {
	d := f.session.Draft()
	d.AssignedTo = strings.TrimSpace(f.inputs[fieldAssignedTo].Value())
	d.Status = strings.TrimSpace(f.inputs[fieldStatus].Value())
	d.Priority = strings.TrimSpace(f.inputs[fieldPriority].Value())
	d.Comments = f.inputs[fieldComments].Value()

	raw := f.inputs[fieldDueDate].Value()
	if strings.TrimSpace(raw) == "" {
		return d, nil
	}
	day, err := f.dates.Parse(raw, now)
	if err != nil {
		return d, fmt.Errorf("due date: %w", err)
	}
	d.DueDate = f.dates.WithClock(day, d.DueDate)
	return d, nil
}
