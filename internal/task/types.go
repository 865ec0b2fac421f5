package task

import "task-console/internal/model"

// Mode is the editor mode, fixed when a session is opened.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// DeleteKind tells which deletion a confirmation applies to.
type DeleteKind int

const (
	DeleteNone DeleteKind = iota
	DeleteSingle
	DeleteBulk
)

func (k DeleteKind) String() string {
	switch k {
	case DeleteSingle:
		return "single"
	case DeleteBulk:
		return "bulk"
	default:
		return "none"
	}
}

// PendingDelete is the deletion awaiting user confirmation.
type PendingDelete struct {
	Kind   DeleteKind
	TaskID string // single only
	Name   string // assignee of the single target, shown in the prompt
	Count  int    // bulk only: selected ids at request time
}

// View is a copy of the browser state for rendering.
type View struct {
	Tasks         []model.Task // current page, Selected reflects the selection set
	SearchText    string
	Page          int
	PageSize      int
	TotalPages    int
	TotalRecords  int
	SelectedCount int
	AllSelected   bool
	BulkRunning   bool
	Pending       PendingDelete
}

// BulkDeleteReport lists the outcome of a bulk delete walk.
type BulkDeleteReport struct {
	Deleted []string
	Failed  []string
	Skipped []string // not attempted because the walk was cancelled
}
