package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in, want string
	}{
		{"CARRY_SERVER__ADDR", "server.addr"},
		{"CARRY_DATABASE__SQLITE_PATH", "database.sqlite_path"},
		{"CARRY_RECOMMEND__TOP_N", "recommend.top_n"},
		{"POSTGRES_HOST", "database.postgres.host"},
		{"PORT", "server.addr"},
		{"HOME", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tc.in); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}

// Not parallel: uses t.Setenv.
func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := []byte(`
database:
  driver: postgres
  postgres:
    host: db.internal
recommend:
  gate: 9
  fixed_items: [phone, badge]
calendar:
  fetch_timeout: 30s
`)
	if err := os.WriteFile(path, yml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CARRY_RECOMMEND__TOP_N", "2")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Postgres.Host != "db.internal" {
		t.Fatalf("file layer not applied: %+v", cfg.Database)
	}
	if cfg.Database.Postgres.Port != "5432" {
		t.Fatalf("defaults lost under file layer: port=%q", cfg.Database.Postgres.Port)
	}
	if cfg.Database.Postgres.Password != "s3cret" {
		t.Fatalf("env alias not applied")
	}
	if cfg.Recommend.Gate != 9 || cfg.Recommend.TopN != 2 || cfg.Recommend.MaxExtras != 5 {
		t.Fatalf("recommend layering: %+v", cfg.Recommend)
	}
	if len(cfg.Recommend.FixedItems) != 2 || cfg.Recommend.FixedItems[1] != "badge" {
		t.Fatalf("fixed items: %v", cfg.Recommend.FixedItems)
	}
	if cfg.Calendar.FetchTimeout != 30*time.Second {
		t.Fatalf("duration decode: %v", cfg.Calendar.FetchTimeout)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("expected PORT normalized to :9000, got %q", cfg.Server.Addr)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cfg.Database.Driver = "mysql"
	cfg.Recommend.TopN = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation errors")
	}
}
