package http

import (
	"github.com/gin-gonic/gin"

	"task-console/internal/task"
	"task-console/pkg/log"
)

// Handler is the public interface for the task console HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Reload(c *gin.Context)
	Search(c *gin.Context)
	NextPage(c *gin.Context)
	PrevPage(c *gin.Context)
	FirstPage(c *gin.Context)
	LastPage(c *gin.Context)
	SetPage(c *gin.Context)
	SetPageSize(c *gin.Context)
	IncreasePageSize(c *gin.Context)
	DecreasePageSize(c *gin.Context)
	Toggle(c *gin.Context)
	ToggleAll(c *gin.Context)
	RequestDelete(c *gin.Context)
	RequestBulkDelete(c *gin.Context)
	CancelDelete(c *gin.Context)
	ConfirmDelete(c *gin.Context)
	Add(c *gin.Context)
	Edit(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l       log.Logger
	browser task.Browser
	editor  task.Editor
}

// New creates a new HTTP handler for the task console.
func New(l log.Logger, browser task.Browser, editor task.Editor) Handler {
	return &handler{
		l:       l,
		browser: browser,
		editor:  editor,
	}
}
