// Package middleware holds gin middleware shared by the RPC and HTTP
// surfaces, the same role internal/api/middleware plays for the teacher's
// auth middleware, generalized to a surface-agnostic concern.
package middleware

import (
	"github.com/gin-gonic/gin"

	"geoindex/internal/logging"
	"geoindex/pkg/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns a UUID to every request (reusing the client's
// X-Request-ID if present) and logs the request line with it attached, so a
// single id can be grepped across both adapters' logs for one call.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = utils.GenerateID()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()

		logging.Info().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request handled")
	}
}
