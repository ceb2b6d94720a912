package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/carryhelper-backend/internal/app"
	redisclient "github.com/yungbote/carryhelper-backend/internal/clients/redis"
	"github.com/yungbote/carryhelper-backend/internal/data/cache"
	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
	"github.com/yungbote/carryhelper-backend/internal/seed"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

func main() {
	path := flag.String("file", "rules.yaml", "seed file")
	replace := flag.Bool("replace", false, "delete existing rules and type-keyed shoe items first")
	flag.Parse()

	if err := run(*path, *replace); err != nil {
		fmt.Fprintf(os.Stderr, "seed_rules: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, replace bool) error {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	file, err := seed.Parse(fh)
	if err != nil {
		return err
	}

	db, err := app.OpenDB(log, cfg.Database)
	if err != nil {
		return err
	}
	ruleRepo := repos.NewActivityItemRuleRepo(db, log)
	shoeItemRepo := repos.NewShoeCommonItemRepo(db, log)

	sum, err := seed.NewLoader(db, log, ruleRepo, shoeItemRepo).Apply(ctx, file, replace)
	if err != nil {
		return err
	}

	rdb, err := redisclient.NewClient(log, cfg.Redis.Client())
	if err != nil {
		log.Warn("rule cache not invalidated", "error", err)
	} else if rdb != nil {
		defer rdb.Close()
		cache.NewRuleCache(log, rdb, services.NewRuleStore(db, ruleRepo, shoeItemRepo), cfg.Redis.RuleTTL).Invalidate(ctx)
	}

	fmt.Printf("seeded %d rules and %d shoe items from %s\n", sum.Rules, sum.ShoeItems, path)
	return nil
}
