package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/pkg/response"
)

// List godoc
// @Summary     Show the task list
// @Description Returns the current page of the filtered task list. lastPage=true jumps to the last page once.
// @Tags        Tasks
// @Produce     json
// @Param       lastPage query bool false "Jump to the last page"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.ShowList(ctx, model.ListHint{LastPage: req.LastPage})
	h.ok(c)
}

// Reload godoc
// @Summary     Reload tasks
// @Description Refetches every task from the remote resource. The search text is cleared.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.browser.Reload(ctx); err != nil {
		h.l.Errorf(ctx, "browser.Reload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.ok(c)
}

// Search godoc
// @Summary     Search tasks
// @Description Filters by assignee or status, case-insensitive, and returns to page 1.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search text"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/search [POST]
func (h *handler) Search(c *gin.Context) {
	req, err := bindJSON[searchReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.Search(req.Text)
	h.ok(c)
}

// NextPage godoc
// @Summary     Next page
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/pages/next [POST]
func (h *handler) NextPage(c *gin.Context) {
	h.browser.NextPage()
	h.ok(c)
}

// PrevPage godoc
// @Summary     Previous page
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/pages/prev [POST]
func (h *handler) PrevPage(c *gin.Context) {
	h.browser.PrevPage()
	h.ok(c)
}

// FirstPage godoc
// @Summary     First page
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/pages/first [POST]
func (h *handler) FirstPage(c *gin.Context) {
	h.browser.FirstPage()
	h.ok(c)
}

// LastPage godoc
// @Summary     Last page
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/pages/last [POST]
func (h *handler) LastPage(c *gin.Context) {
	h.browser.LastPage()
	h.ok(c)
}

// SetPage godoc
// @Summary     Jump to a page
// @Description The page is clamped to the valid range.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body pageReq true "Page number"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/pages [PUT]
func (h *handler) SetPage(c *gin.Context) {
	req, err := bindJSON[pageReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.SetPage(*req.Page)
	h.ok(c)
}

// SetPageSize godoc
// @Summary     Set page size
// @Description The size is clamped to [1, 50] and the page returns to 1.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body pageSizeReq true "Page size"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/page-size [PUT]
func (h *handler) SetPageSize(c *gin.Context) {
	req, err := bindJSON[pageSizeReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.SetPageSize(*req.Size)
	h.ok(c)
}

// IncreasePageSize godoc
// @Summary     Grow page size by one
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/page-size/increase [POST]
func (h *handler) IncreasePageSize(c *gin.Context) {
	h.browser.IncreasePageSize()
	h.ok(c)
}

// DecreasePageSize godoc
// @Summary     Shrink page size by one
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/page-size/decrease [POST]
func (h *handler) DecreasePageSize(c *gin.Context) {
	h.browser.DecreasePageSize()
	h.ok(c)
}

// Toggle godoc
// @Summary     Select or unselect a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body toggleReq true "Task id and checked flag"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/selection [POST]
func (h *handler) Toggle(c *gin.Context) {
	req, err := bindJSON[toggleReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.Toggle(req.ID, req.Checked)
	h.ok(c)
}

// ToggleAll godoc
// @Summary     Select every filtered task, or clear the selection
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body toggleAllReq true "Checked flag"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/selection/all [POST]
func (h *handler) ToggleAll(c *gin.Context) {
	req, err := bindJSON[toggleAllReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.browser.ToggleAll(req.Checked)
	h.ok(c)
}

// RequestDelete godoc
// @Summary     Ask to delete one task
// @Description Arms a single delete. Nothing is deleted until the request is confirmed.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/delete-request [POST]
func (h *handler) RequestDelete(c *gin.Context) {
	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.browser.RequestDelete(id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.ok(c)
}

// RequestBulkDelete godoc
// @Summary     Ask to delete every selected task
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Nothing selected"
// @Failure     409 {object} response.Resp "A bulk delete is running"
// @Router      /api/v1/tasks/delete-request/bulk [POST]
func (h *handler) RequestBulkDelete(c *gin.Context) {
	if err := h.browser.RequestBulkDelete(); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.ok(c)
}

// CancelDelete godoc
// @Summary     Dismiss the pending deletion
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/delete-request [DELETE]
func (h *handler) CancelDelete(c *gin.Context) {
	h.browser.CancelDelete()
	h.ok(c)
}

// ConfirmDelete godoc
// @Summary     Confirm the pending deletion
// @Description A single delete completes before the response. A bulk delete is accepted and runs in the background, one task at a time.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} reportResp
// @Success     202 {object} response.Resp "Bulk delete accepted"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Nothing to confirm"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/delete-request/confirm [POST]
func (h *handler) ConfirmDelete(c *gin.Context) {
	ctx := c.Request.Context()

	job, err := h.browser.ClaimDelete()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if job.Kind() == task.DeleteBulk {
		// The walk outlives the request.
		bgCtx := context.WithoutCancel(ctx)
		go func() {
			rep, err := job.Run(bgCtx)
			if err != nil {
				h.l.Errorf(bgCtx, "browser.ConfirmDelete: %v", err)
				return
			}
			h.l.Infof(bgCtx, "bulk delete finished: deleted=%d failed=%d", len(rep.Deleted), len(rep.Failed))
		}()

		response.Accepted(c, gin.H{"status": "accepted", "count": len(job.IDs())})
		return
	}

	rep, err := job.Run(ctx)
	if err != nil {
		h.l.Errorf(ctx, "browser.ConfirmDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReportResp(rep, h.browser.Snapshot()))
}

// Add godoc
// @Summary     Blank task draft
// @Description Opens the editor in create mode and returns its draft.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} draftResp
// @Router      /api/v1/tasks/add [GET]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.editor.Open(ctx, "")
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newDraftResp(s))
}

// Edit godoc
// @Summary     Task draft for editing
// @Description Opens the editor in edit mode and returns the loaded task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} draftResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/edit/{id} [GET]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.editor.Open(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "editor.Open: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newDraftResp(s))
}

// Create godoc
// @Summary     Create a task
// @Description Saves a new task, reloads the list and jumps to its last page.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task fields"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	h.save(c, "")
}

// Update godoc
// @Summary     Update a task
// @Description Replaces a task and reloads the list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body taskReq true "Task fields"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Task could not be loaded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	h.save(c, id)
}

func (h *handler) save(c *gin.Context, id string) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.editor.Open(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "editor.Open: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	s.SetDraft(req.toModel(s.Draft()))

	saved, err := s.Submit(ctx)
	if err != nil {
		h.l.Errorf(ctx, "editor.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSaveResp(saved, s.Mode() == task.ModeCreate, h.browser.Snapshot()))
}

func (h *handler) ok(c *gin.Context) {
	response.OK(c, h.newListResp(h.browser.Snapshot()))
}
