package observability

import (
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		raw  string
		want map[string]string
	}{
		{"", nil},
		{"a=1", map[string]string{"a": "1"}},
		{" a = 1 , b=2,broken,=x,c=", map[string]string{"a": "1", "b": "2"}},
		{"broken", nil},
	}
	for _, tc := range tests {
		if got := parseHeaders(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parseHeaders(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestOtelSampleRatioClamped(t *testing.T) {
	t.Setenv("OTEL_SAMPLER_RATIO", "4")
	if got := otelSampleRatio(); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	t.Setenv("OTEL_SAMPLER_RATIO", "-1")
	if got := otelSampleRatio(); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}
