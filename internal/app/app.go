package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/carryhelper-backend/internal/clients/redis"
	"github.com/yungbote/carryhelper-backend/internal/data/db"
	apphttp "github.com/yungbote/carryhelper-backend/internal/http"
	"github.com/yungbote/carryhelper-backend/internal/jobs/calendarsync"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Redis    *goredis.Client
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Server   *apphttp.Server

	scheduler    *calendarsync.Scheduler
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(cfg.Server.Mode)

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.Otel.ServiceName,
		Environment: cfg.Otel.Environment,
	})
	metrics := observability.Init(log)
	if metrics == nil && cfg.Metrics.Enabled {
		metrics = observability.New()
	}

	theDB, err := OpenDB(log, cfg.Database)
	if err != nil {
		log.Sync()
		return nil, err
	}

	rdb, err := redisclient.NewClient(log, cfg.Redis.Client())
	if err != nil {
		// The rule cache is optional; run against the database alone.
		log.Warn("redis unavailable, rule cache disabled", "error", err)
		rdb = nil
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, rdb, metrics)
	handlerset := wireHandlers(log, serviceset)
	server := apphttp.NewServer(wireRouterConfig(log, cfg, handlerset, metrics, otelShutdown != nil), cfg.Server.Addr)

	var scheduler *calendarsync.Scheduler
	if cfg.Calendar.Enabled {
		scheduler, err = calendarsync.NewScheduler(log, serviceset.Calendar, cfg.Calendar.SyncSchedule, 0)
		if err != nil {
			log.Sync()
			return nil, err
		}
	}

	return &App{
		Log:          log,
		DB:           theDB,
		Redis:        rdb,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Server:       server,
		scheduler:    scheduler,
		otelShutdown: otelShutdown,
	}, nil
}

// OpenDB connects to the configured driver and migrates the schema.
func OpenDB(log *logger.Logger, cfg DatabaseConfig) (*gorm.DB, error) {
	var svc db.Service
	switch cfg.Driver {
	case "postgres":
		pg, err := db.NewPostgresService(log, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		svc = pg
	default:
		sq, err := db.NewSQLiteService(log, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		svc = sq
	}
	if err := svc.AutoMigrateAll(); err != nil {
		return nil, fmt.Errorf("%s automigrate: %w", cfg.Driver, err)
	}
	return svc.DB(), nil
}

// Run starts the background workers and serves HTTP until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}

	a.Metrics.StartServer(ctx, a.Log, a.Cfg.Metrics.Addr)
	a.Metrics.StartDBCollector(ctx, a.Log, a.DB)
	if a.Redis != nil {
		a.Metrics.StartRedisCollector(ctx, a.Log, a.Redis)
	}

	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start calendar sync: %w", err)
		}
	}

	return a.Server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
