package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-console/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id taken from the X-Request-ID header
// or freshly generated. The id is echoed back and stored in the request
// context so log lines carry it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
