package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/microservicio/metrics"
)

// Metrics records request count and latency labelled by route pattern.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.Begin(c.Request.Method)
		c.Next()
		done(c.FullPath(), c.Writer.Status())
	}
}
