package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-console/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks on top of the browser and editor
// built by the caller.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.browser, srv.editor)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered at /api/v1/tasks")
	return nil
}
