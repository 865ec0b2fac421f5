package http

import (
	"github.com/gin-gonic/gin"

	"task-console/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.POST("/reload", h.Reload)
		tasks.POST("/search", h.Search)

		tasks.POST("/pages/next", h.NextPage)
		tasks.POST("/pages/prev", h.PrevPage)
		tasks.POST("/pages/first", h.FirstPage)
		tasks.POST("/pages/last", h.LastPage)
		tasks.PUT("/pages", h.SetPage)

		tasks.PUT("/page-size", h.SetPageSize)
		tasks.POST("/page-size/increase", h.IncreasePageSize)
		tasks.POST("/page-size/decrease", h.DecreasePageSize)

		tasks.POST("/selection", h.Toggle)
		tasks.POST("/selection/all", h.ToggleAll)

		tasks.POST("/delete-request/bulk", h.RequestBulkDelete)
		tasks.POST("/delete-request/confirm", h.ConfirmDelete)
		tasks.DELETE("/delete-request", h.CancelDelete)

		tasks.GET("/add", h.Add)
		tasks.GET("/edit/:id", h.Edit)
		tasks.POST("/:id/delete-request", h.RequestDelete)
		tasks.PUT("/:id", h.Update)
	}
}
