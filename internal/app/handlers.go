package app

import (
	httpH "github.com/yungbote/carryhelper-backend/internal/http/handlers"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Recommendation *httpH.RecommendationHandler
	User           *httpH.UserHandler
	Event          *httpH.EventHandler
	Shoe           *httpH.ShoeHandler
	Rule           *httpH.RuleHandler
	Reminder       *httpH.ReminderHandler
	Calendar       *httpH.CalendarHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(),
		Recommendation: httpH.NewRecommendationHandler(s.Recommendation),
		User:           httpH.NewUserHandler(s.User),
		Event:          httpH.NewEventHandler(s.Event),
		Shoe:           httpH.NewShoeHandler(s.Shoe),
		Rule:           httpH.NewRuleHandler(s.Rule),
		Reminder:       httpH.NewReminderHandler(s.Reminder),
		Calendar:       httpH.NewCalendarHandler(s.Calendar),
	}
}
