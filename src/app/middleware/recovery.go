package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/response"
)

// Recovery turns a panic in a handler into a 500 response. A scoped db
// client held by the panicking handler has already been released by its
// deferred cleanup by the time this runs.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log.ErrorContext(c.Request.Context(), "panic recovered",
				"error", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)

			c.Abort()
			response.InternalError(c, GetRequestID(c))
		}()

		c.Next()
	}
}
