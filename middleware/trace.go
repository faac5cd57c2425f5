package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/ctxutil"
)

// Trace propagates a well-formed X-Request-ID header, generating one otherwise,
// and stores it in the request context for logging.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(ctxutil.TraceIDHeader); ctxutil.ValidTraceID(id) {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Set(ctxutil.TraceIDKey, traceID)
		c.Header(ctxutil.TraceIDHeader, traceID)
		c.Next()
	}
}
