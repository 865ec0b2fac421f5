package model

import "time"

const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

// Statuses and Priorities list the values offered by the front-ends. The remote
// resource accepts any string.
var (
	Statuses   = []string{StatusNotStarted, StatusInProgress, StatusCompleted}
	Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh}
)

// Task is a unit of tracked work as stored by the remote task resource.
type Task struct {
	ID         string    `json:"id,omitempty"` // server-assigned, empty for an unsaved draft
	AssignedTo string    `json:"assignedTo"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"dueDate"`
	Priority   string    `json:"priority"`
	Comments   string    `json:"comments"`

	// Selected is UI-only state and never leaves the process.
	Selected bool `json:"-"`
}

// NewDraft returns the blank task the editor starts from in create mode.
func NewDraft(now time.Time) Task {
	return Task{
		Status:   StatusNotStarted,
		DueDate:  now,
		Priority: PriorityNormal,
	}
}

// ListHint is the navigation state handed to the list view.
type ListHint struct {
	LastPage bool // one-shot request to show the last page
}
