package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-console/internal/task"
	"task-console/pkg/datemath"
	"task-console/pkg/log"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeConfirm
)

// Model is the bubbletea model for the task console. List state lives in the
// browser; the model only keeps the cursor, the active form and the status line.
type Model struct {
	ctx     context.Context
	l       log.Logger
	browser task.Browser
	editor  task.Editor
	dates   *datemath.Parser
	now     func() time.Time

	mode   mode
	cursor int
	search textinput.Model
	form   *form
	status string
	busy   bool
}

// New builds the model. ctx bounds every network call the model starts and
// dates resolves the due dates typed into the form.
func New(ctx context.Context, l log.Logger, browser task.Browser, editor task.Editor, dates *datemath.Parser) Model {
	si := textinput.New()
	si.Placeholder = "assignee or status"
	si.CharLimit = 128
	si.Width = 40

	return Model{
		ctx:     ctx,
		l:       l,
		browser: browser,
		editor:  editor,
		dates:   dates,
		now:     time.Now,
		mode:    modeList,
		search:  si,
		status:  "Loading tasks...",
	}
}

// Run starts the terminal program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, l log.Logger, browser task.Browser, editor task.Editor, dates *datemath.Parser) error {
	program := tea.NewProgram(New(ctx, l, browser, editor, dates), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}
