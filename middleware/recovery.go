package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/ecode"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/logging/observes"
	"github.com/ncobase/microservicio/net/resp"
)

// Recovery binds a per-request sentry hub to the request context and turns
// panics into a generic 500 response.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		c.Request = c.Request.WithContext(sentry.SetHubOnContext(c.Request.Context(), hub))

		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				err := fmt.Errorf("panic: %v", r)
				l.Error(ctx, "panic recovered", "error", err, "path", c.Request.URL.Path, "stack", string(debug.Stack()))
				observes.CaptureError(ctx, err, map[string]string{"path": c.FullPath()})

				if !c.Writer.Written() {
					resp.Fail(c.Writer, resp.InternalServer(ecode.MsgInternal))
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
