package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	redisclient "github.com/yungbote/carryhelper-backend/internal/clients/redis"
	"github.com/yungbote/carryhelper-backend/internal/data/db"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
)

const (
	ConfigPathEnvVar = "CONFIG_PATH"
	envPrefix        = "CARRY_"
)

var DefaultConfigPaths = []string{"config.yaml", "/etc/carryhelper/config.yaml"}

type Config struct {
	LogMode   string           `koanf:"log_mode"`
	Server    ServerConfig     `koanf:"server"`
	Database  DatabaseConfig   `koanf:"database"`
	Redis     RedisConfig      `koanf:"redis"`
	Recommend recommend.Config `koanf:"recommend"`
	Calendar  CalendarConfig   `koanf:"calendar"`
	Metrics   MetricsConfig    `koanf:"metrics"`
	Otel      OtelConfig       `koanf:"otel"`
}

type ServerConfig struct {
	Addr        string   `koanf:"addr"`
	Mode        string   `koanf:"mode"`
	CORSOrigins []string `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	// Driver is postgres or sqlite.
	Driver     string            `koanf:"driver"`
	Postgres   db.PostgresConfig `koanf:"postgres"`
	SQLitePath string            `koanf:"sqlite_path"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	RuleTTL  time.Duration `koanf:"rule_ttl"`
}

func (c RedisConfig) Client() redisclient.Config {
	return redisclient.Config{Addr: c.Addr, Password: c.Password, DB: c.DB}
}

type CalendarConfig struct {
	Enabled      bool          `koanf:"enabled"`
	SyncSchedule string        `koanf:"sync_schedule"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	HorizonDays  int           `koanf:"horizon_days"`
	Concurrency  int           `koanf:"concurrency"`
}

// MetricsConfig turns the prometheus listener on; METRICS_ENABLED does too.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

type OtelConfig struct {
	ServiceName string `koanf:"service_name"`
	Environment string `koanf:"environment"`
}

func defaultConfig() Config {
	return Config{
		LogMode: "development",
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Postgres: db.PostgresConfig{
				Host:    "localhost",
				Port:    "5432",
				User:    "postgres",
				Name:    "carryhelper",
				SSLMode: "disable",
			},
			SQLitePath: "carryhelper.db",
		},
		Redis: RedisConfig{
			RuleTTL: 5 * time.Minute,
		},
		Recommend: recommend.DefaultConfig(),
		Calendar: CalendarConfig{
			Enabled:      true,
			SyncSchedule: "*/15 * * * *",
			FetchTimeout: 15 * time.Second,
			HorizonDays:  30,
			Concurrency:  4,
		},
		Metrics: MetricsConfig{Addr: ":9090"},
		Otel:    OtelConfig{ServiceName: "carryhelper", Environment: "development"},
	}
}

// LoadConfig layers defaults, an optional YAML file and environment
// variables, in increasing priority.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	// PORT=8080 style values.
	if a := strings.TrimSpace(cfg.Server.Addr); a != "" && !strings.Contains(a, ":") {
		cfg.Server.Addr = ":" + a
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Conventional variable names that predate the CARRY_ prefix.
var envAliases = map[string]string{
	"log_mode":          "log_mode",
	"port":              "server.addr",
	"gin_mode":          "server.mode",
	"db_driver":         "database.driver",
	"sqlite_path":       "database.sqlite_path",
	"postgres_host":     "database.postgres.host",
	"postgres_port":     "database.postgres.port",
	"postgres_user":     "database.postgres.user",
	"postgres_password": "database.postgres.password",
	"postgres_name":     "database.postgres.name",
	"postgres_sslmode":  "database.postgres.sslmode",
	"redis_addr":        "redis.addr",
	"redis_password":    "redis.password",
	"metrics_addr":      "metrics.addr",
	"calendar_sync":     "calendar.enabled",
	"otel_service_name": "otel.service_name",
}

// envTransformFunc maps CARRY_SECTION__FIELD_NAME to section.field_name and
// the aliases above to their paths. Everything else is ignored.
func envTransformFunc(key string) string {
	lower := strings.ToLower(key)
	if path, ok := envAliases[lower]; ok {
		return path
	}
	if !strings.HasPrefix(key, envPrefix) {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".")
}

func (c Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if err := c.Recommend.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("recommend: %w", err))
	}
	if c.Calendar.HorizonDays <= 0 {
		errs = append(errs, fmt.Errorf("calendar.horizon_days must be > 0, got %d", c.Calendar.HorizonDays))
	}
	if c.Calendar.Enabled && strings.TrimSpace(c.Calendar.SyncSchedule) == "" {
		errs = append(errs, errors.New("calendar.sync_schedule is required when calendar sync is enabled"))
	}
	return errors.Join(errs...)
}
