package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	kv := sanitizeKVs([]interface{}{
		"user_id", 42,
		"database_dsn", "postgres://u:p@h/db",
		"activity", "class",
		"dangling",
	})
	if len(kv) != 7 {
		t.Fatalf("unexpected kv length: %d (%v)", len(kv), kv)
	}
	if got, _ := kv[1].(string); !strings.HasPrefix(got, "hash:") {
		t.Fatalf("user_id not hashed: %v", kv[1])
	}
	if kv[3] != "[REDACTED]" {
		t.Fatalf("dsn not redacted: %v", kv[3])
	}
	if kv[5] != "class" {
		t.Fatalf("plain value changed: %v", kv[5])
	}
	if kv[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", kv[6])
	}
}

func TestHashValueStable(t *testing.T) {
	a := hashValue(7)
	b := hashValue("7")
	if a != b {
		t.Fatalf("hash differs for equal renderings: %q vs %q", a, b)
	}
	if hashValue("") != "" {
		t.Fatalf("empty value should hash to empty")
	}
}

func TestNopLogger(t *testing.T) {
	l := Nop().With("service", "test")
	l.Info("hello", "user_id", 1)
	l.Sync()
}
