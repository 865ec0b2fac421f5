package task

import (
	"context"

	"task-console/internal/model"
)

// Navigator moves the front-end back to the list view.
type Navigator interface {
	ShowList(ctx context.Context, hint model.ListHint)
}

// Editor opens editing sessions for one task.
type Editor interface {
	// Open starts a session. An empty id opens create mode; otherwise edit mode loads the task.
	// A load failure is returned together with a usable session holding the blank draft.
	Open(ctx context.Context, id string) (EditorSession, error)
}

// EditorSession is one editor instance; its mode never changes.
type EditorSession interface {
	Mode() Mode
	ID() string
	Draft() model.Task
	SetDraft(t model.Task)
	LoadErr() error
	Submit(ctx context.Context) (model.Task, error)
	Cancel(ctx context.Context)
}

// Browser is the list view: full collection, filtered view, current page, selection and deletion.
type Browser interface {
	Navigator

	Start(ctx context.Context, hint model.ListHint) error
	Reload(ctx context.Context) error
	Close()

	Search(text string)
	NextPage()
	PrevPage()
	FirstPage()
	LastPage()
	SetPage(page int)
	SetPageSize(size int)
	IncreasePageSize()
	DecreasePageSize()

	Toggle(id string, checked bool)
	ToggleAll(checked bool)
	IsSelected(id string) bool
	HasSelection() bool
	AllSelected() bool

	RequestDelete(id string) error
	RequestBulkDelete() error
	CancelDelete()
	// ClaimDelete consumes the pending confirmation and returns the deletion it
	// armed. A claimed bulk delete counts as running until its job is run.
	ClaimDelete() (DeleteJob, error)
	// ConfirmDelete claims and runs the pending deletion.
	ConfirmDelete(ctx context.Context) (BulkDeleteReport, error)

	Snapshot() View
}

// DeleteJob is a claimed deletion. Run executes it once; later calls return
// ErrNoPendingDelete.
type DeleteJob interface {
	Kind() DeleteKind
	IDs() []string
	Run(ctx context.Context) (BulkDeleteReport, error)
}
