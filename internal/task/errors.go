package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrDraftNotLoaded    = errors.New("task could not be loaded for editing")
	ErrSessionClosed     = errors.New("editor session is closed")
	ErrTaskNotFound      = errors.New("task not found in the current list")
	ErrNoPendingDelete   = errors.New("no deletion awaiting confirmation")
	ErrEmptySelection    = errors.New("no tasks selected")
	ErrBulkDeleteRunning = errors.New("a bulk delete is already running")
)
