package app

import (
	apphttp "github.com/yungbote/carryhelper-backend/internal/http"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

func wireRouterConfig(log *logger.Logger, cfg Config, h Handlers, metrics *observability.Metrics, tracing bool) apphttp.RouterConfig {
	return apphttp.RouterConfig{
		Log:         log,
		Metrics:     metrics,
		ServiceName: cfg.Otel.ServiceName,
		Tracing:     tracing,
		CORSOrigins: cfg.Server.CORSOrigins,

		HealthHandler:         h.Health,
		RecommendationHandler: h.Recommendation,
		UserHandler:           h.User,
		EventHandler:          h.Event,
		ShoeHandler:           h.Shoe,
		RuleHandler:           h.Rule,
		ReminderHandler:       h.Reminder,
		CalendarHandler:       h.Calendar,
	}
}
