package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParseTime(t *testing.T) {
	t.Parallel()
	want := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"2025-12-08T10:00:00Z", false},
		{"2025-12-08T18:00:00+08:00", false},
		{"2025-12-08T10:00:00", false},
		{"2025-12-08 10:00:00", false},
		{"2025-12-08T10:00", false},
		{"tomorrow", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseTime(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTime: %v", err)
			}
			if !got.Equal(want) || got.Location() != time.UTC {
				t.Fatalf("got=%v want=%v", got, want)
			}
		})
	}
}

func TestBindStrictJSON(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"name":"alice"}`, false},
		{"unknown field", `{"user_name":"alice"}`, true},
		{"missing required", `{}`, true},
		{"empty body", ``, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var req createUserRequest
			err := bindStrictJSON(c, &req)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query      string
		wantOffset int
		wantLimit  int
		wantErr    bool
	}{
		{"", 0, defaultPageLimit, false},
		{"skip=20&limit=10", 20, 10, false},
		{"limit=100000", 0, maxPageLimit, false},
		{"skip=-1", 0, 0, true},
		{"limit=x", 0, 0, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			offset, limit, err := page(c)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
			if !tc.wantErr && (offset != tc.wantOffset || limit != tc.wantLimit) {
				t.Fatalf("got offset=%d limit=%d", offset, limit)
			}
		})
	}
}
