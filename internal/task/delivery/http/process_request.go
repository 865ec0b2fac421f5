package http

import (
	"github.com/gin-gonic/gin"
)

// processTaskReq binds a create or update body.
func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam reads the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errBadID
	}
	return id, nil
}

// bindJSON binds any small request body.
func bindJSON[T any](c *gin.Context) (T, error) {
	var req T
	err := c.ShouldBindJSON(&req)
	return req, err
}
