package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

func observedRouter(t *testing.T, m *observability.Metrics) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	r := gin.New()
	r.Use(RequestLogger(log, "/healthcheck"), Metrics(m, "/healthcheck"))
	r.GET("/healthcheck", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/api/users/:id/shoes", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	r.GET("/api/recommendations", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	return r, logs
}

func serve(r *gin.Engine, path string) {
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestRequestLoggerLevelsAndFields(t *testing.T) {
	t.Parallel()
	r, logs := observedRouter(t, nil)

	cases := []struct {
		path     string
		level    zapcore.Level
		route    string
		wantUser bool
		wantPath bool
	}{
		{path: "/healthcheck", level: zapcore.DebugLevel, route: "/healthcheck"},
		{path: "/api/users/7/shoes", level: zapcore.InfoLevel, route: "/api/users/:id/shoes", wantUser: true},
		{path: "/api/recommendations?user_id=7", level: zapcore.WarnLevel, route: "/api/recommendations", wantUser: true},
		{path: "/nope", level: zapcore.WarnLevel, route: unmatchedRoute, wantPath: true},
	}
	for _, tc := range cases {
		serve(r, tc.path)
		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("%s: expected one log line, got %d", tc.path, len(entries))
		}
		e := entries[0]
		fields := e.ContextMap()
		if e.Level != tc.level {
			t.Fatalf("%s: level got=%s want=%s", tc.path, e.Level, tc.level)
		}
		if fields["route"] != tc.route {
			t.Fatalf("%s: route got=%v want=%s", tc.path, fields["route"], tc.route)
		}
		if _, ok := fields["user_id"]; ok != tc.wantUser {
			t.Fatalf("%s: user_id present=%v want=%v", tc.path, ok, tc.wantUser)
		}
		if _, ok := fields["path"]; ok != tc.wantPath {
			t.Fatalf("%s: path present=%v want=%v", tc.path, ok, tc.wantPath)
		}
	}
}

func TestMetricsSkipsHealthAndBoundsRoutes(t *testing.T) {
	t.Parallel()
	m := observability.New()
	r, _ := observedRouter(t, m)

	serve(r, "/healthcheck")
	serve(r, "/api/users/1/shoes")
	serve(r, "/api/users/2/shoes")
	serve(r, "/random-a")
	serve(r, "/random-b")

	// One series per route template: the shoes route and the unmatched bucket.
	if got, err := testutil.GatherAndCount(m.Gatherer(), "carry_api_requests_total"); err != nil || got != 2 {
		t.Fatalf("api request series: got=%d err=%v want=2", got, err)
	}
}
