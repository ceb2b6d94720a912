package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/platform/ctxutil"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

// unmatchedRoute labels requests that hit no registered route, so probes for
// random paths cannot grow log or metric cardinality.
const unmatchedRoute = "unmatched"

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

// subjectUser is the user a request acts on: the :id of a /users route or the
// user_id query parameter of the recommendation reads. The logger hashes it.
func subjectUser(c *gin.Context) string {
	if id := c.Param("id"); id != "" && strings.HasPrefix(c.FullPath(), "/api/users/") {
		return id
	}
	return c.Query("user_id")
}

// RequestLogger logs one line per request. Successful requests to quiet routes
// (health probes) are logged at debug.
func RequestLogger(log *logger.Logger, quietRoutes ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(quietRoutes))
	for _, r := range quietRoutes {
		quiet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		route := routeOf(c)
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if route == unmatchedRoute {
			fields = append(fields, "path", c.Request.URL.Path)
		}
		if user := subjectUser(c); user != "" {
			fields = append(fields, "user_id", user)
		}
		if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
			fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			fields = append(fields, "error", errs.String())
		}

		_, isQuiet := quiet[route]
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		case isQuiet:
			log.Debug("request served", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
