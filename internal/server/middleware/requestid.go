// file: internal/server/middleware/requestid.go
// version: 1.0.0
// guid: a3b4c5d6-e7f8-091a-2b3c-4d5e6f708192

package middleware

import (
	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a ULID unless the client already sent one.
// The id is stored in the gin context and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
