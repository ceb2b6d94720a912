package app

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/cache"
	"github.com/yungbote/carryhelper-backend/internal/ics"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type Services struct {
	RuleCache *cache.RuleCache
	Engine    *recommend.Engine

	Recommendation services.RecommendationService
	User           services.UserService
	Event          services.EventService
	Shoe           services.ShoeService
	Rule           services.RuleService
	Reminder       services.ReminderService
	Calendar       services.CalendarService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, rdb *goredis.Client, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	ruleCache := cache.NewRuleCache(log, rdb, services.NewRuleStore(db, r.ActivityItemRule, r.ShoeCommonItem), cfg.Redis.RuleTTL)
	schedule := services.NewScheduleStore(db, r.User, r.UserShoe, r.Event, r.EncounterRule)
	engine := recommend.NewEngine(log, ruleCache, schedule, cfg.Recommend)

	return Services{
		RuleCache: ruleCache,
		Engine:    engine,

		Recommendation: services.NewRecommendationService(log, engine, ruleCache, r.UserShoe, metrics),
		User:           services.NewUserService(db, log, r.User),
		Event:          services.NewEventService(db, log, r.User, r.Event),
		Shoe:           services.NewShoeService(db, log, r.User, r.UserShoe),
		Rule: services.NewRuleService(db, log,
			r.User, r.UserShoe, r.ActivityItemRule, r.ShoeCommonItem, r.EncounterRule, ruleCache),
		Reminder: services.NewReminderService(db, log, r.User, r.Event, r.ReminderLog),
		Calendar: services.NewCalendarService(db, log,
			r.User, r.Event, r.CalendarSource,
			ics.NewFetcher(cfg.Calendar.FetchTimeout),
			metrics,
			services.CalendarConfig{
				Horizon:     time.Duration(cfg.Calendar.HorizonDays) * 24 * time.Hour,
				Concurrency: cfg.Calendar.Concurrency,
			},
		),
	}
}
