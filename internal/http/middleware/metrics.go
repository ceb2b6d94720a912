package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/observability"
)

// Metrics records API request counts and latency per route template. Routes
// in skip (health probes) are not recorded. A nil m disables the middleware.
func Metrics(m *observability.Metrics, skip ...string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, r := range skip {
		skipped[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := skipped[c.FullPath()]; ok {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		c.Next()
		m.ApiInflightDec()
		m.ObserveAPI(c.Request.Method, routeOf(c), observability.StatusLabel(c.Writer.Status()), time.Since(start))
	}
}
