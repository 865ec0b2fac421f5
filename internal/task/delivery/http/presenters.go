package http

import (
	"time"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	AssignedTo string    `json:"assigned_to"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"due_date"`
	Priority   string    `json:"priority"`
	Comments   string    `json:"comments"`
}

// toModel applies the request to the editor draft. A missing due date, status
// or priority keeps the draft's value.
func (r taskReq) toModel(draft model.Task) model.Task {
	t := draft
	t.AssignedTo = r.AssignedTo
	t.Comments = r.Comments
	if r.Status != "" {
		t.Status = r.Status
	}
	if r.Priority != "" {
		t.Priority = r.Priority
	}
	if !r.DueDate.IsZero() {
		t.DueDate = r.DueDate
	}
	return t
}

type searchReq struct {
	Text string `json:"text"`
}

// pageReq and pageSizeReq take any number; the browser clamps it.
type pageReq struct {
	Page *int `json:"page" binding:"required"`
}

type pageSizeReq struct {
	Size *int `json:"size" binding:"required"`
}

type toggleReq struct {
	ID      string `json:"id" binding:"required"`
	Checked bool   `json:"checked"`
}

type toggleAllReq struct {
	Checked bool `json:"checked"`
}

type listReq struct {
	LastPage bool `form:"lastPage"`
}

// --- Response DTOs ---

type taskResp struct {
	ID         string        `json:"id"`
	AssignedTo string        `json:"assigned_to"`
	Status     string        `json:"status"`
	DueDate    time.Time     `json:"due_date"`
	DueDay     response.Date `json:"due_day"`
	Priority   string        `json:"priority"`
	Comments   string        `json:"comments"`
	Selected   bool          `json:"selected"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		AssignedTo: t.AssignedTo,
		Status:     t.Status,
		DueDate:    t.DueDate,
		DueDay:     response.Date(t.DueDate),
		Priority:   t.Priority,
		Comments:   t.Comments,
		Selected:   t.Selected,
	}
}

type pendingResp struct {
	Kind   string `json:"kind"`
	TaskID string `json:"task_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Count  int    `json:"count,omitempty"`
}

type listResp struct {
	Tasks         []taskResp   `json:"tasks"`
	SearchText    string       `json:"search_text"`
	Page          int          `json:"page"`
	PageSize      int          `json:"page_size"`
	TotalPages    int          `json:"total_pages"`
	TotalRecords  int          `json:"total_records"`
	SelectedCount int          `json:"selected_count"`
	AllSelected   bool         `json:"all_selected"`
	BulkRunning   bool         `json:"bulk_running"`
	Pending       *pendingResp `json:"pending,omitempty"`
}

func (h *handler) newListResp(v task.View) listResp {
	tasks := make([]taskResp, len(v.Tasks))
	for i, t := range v.Tasks {
		tasks[i] = newTaskResp(t)
	}

	resp := listResp{
		Tasks:         tasks,
		SearchText:    v.SearchText,
		Page:          v.Page,
		PageSize:      v.PageSize,
		TotalPages:    v.TotalPages,
		TotalRecords:  v.TotalRecords,
		SelectedCount: v.SelectedCount,
		AllSelected:   v.AllSelected,
		BulkRunning:   v.BulkRunning,
	}
	if v.Pending.Kind != task.DeleteNone {
		resp.Pending = &pendingResp{
			Kind:   v.Pending.Kind.String(),
			TaskID: v.Pending.TaskID,
			Name:   v.Pending.Name,
			Count:  v.Pending.Count,
		}
	}
	return resp
}

type draftResp struct {
	Mode       string   `json:"mode"`
	Task       taskResp `json:"task"`
	Statuses   []string `json:"statuses"`
	Priorities []string `json:"priorities"`
}

func (h *handler) newDraftResp(s task.EditorSession) draftResp {
	return draftResp{
		Mode:       s.Mode().String(),
		Task:       newTaskResp(s.Draft()),
		Statuses:   model.Statuses,
		Priorities: model.Priorities,
	}
}

type saveResp struct {
	Task taskResp `json:"task"`
	Next nextResp `json:"next"`
	List listResp `json:"list"`
}

type nextResp struct {
	View     string `json:"view"`
	LastPage bool   `json:"last_page"`
}

func (h *handler) newSaveResp(saved model.Task, created bool, v task.View) saveResp {
	return saveResp{
		Task: newTaskResp(saved),
		Next: nextResp{View: "list", LastPage: created},
		List: h.newListResp(v),
	}
}

type reportResp struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
	Skipped []string `json:"skipped,omitempty"`
	List    listResp `json:"list"`
}

func (h *handler) newReportResp(rep task.BulkDeleteReport, v task.View) reportResp {
	return reportResp{
		Deleted: nonNil(rep.Deleted),
		Failed:  nonNil(rep.Failed),
		Skipped: rep.Skipped,
		List:    h.newListResp(v),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
