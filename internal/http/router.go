package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/carryhelper-backend/internal/http/handlers"
	httpMW "github.com/yungbote/carryhelper-backend/internal/http/middleware"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	// Tracing adds the otelgin middleware.
	Tracing     bool
	CORSOrigins []string

	HealthHandler         *httpH.HealthHandler
	RecommendationHandler *httpH.RecommendationHandler
	UserHandler           *httpH.UserHandler
	EventHandler          *httpH.EventHandler
	ShoeHandler           *httpH.ShoeHandler
	RuleHandler           *httpH.RuleHandler
	ReminderHandler       *httpH.ReminderHandler
	CalendarHandler       *httpH.CalendarHandler
}

const healthRoute = "/healthcheck"

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		name := cfg.ServiceName
		if name == "" {
			name = "carryhelper"
		}
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log, healthRoute))
	r.Use(httpMW.Metrics(cfg.Metrics, healthRoute))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET(healthRoute, cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Recommendations
		if cfg.RecommendationHandler != nil {
			api.GET("/recommendations", cfg.RecommendationHandler.GetRecommendations)
			api.POST("/detect_shoe", cfg.RecommendationHandler.DetectShoe)
			api.GET("/mcu/common_items", cfg.RecommendationHandler.CommonItems)
		}

		// Users
		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.CreateUser)
			api.GET("/users", cfg.UserHandler.ListUsers)
			api.GET("/users/:id", cfg.UserHandler.GetUser)
		}

		// Events
		if cfg.EventHandler != nil {
			api.POST("/events", cfg.EventHandler.CreateEvent)
			api.GET("/events", cfg.EventHandler.ListEvents)
			api.GET("/events/:id", cfg.EventHandler.GetEvent)
			api.GET("/users/:id/events", cfg.EventHandler.ListUserEvents)
		}

		// Shoes
		if cfg.ShoeHandler != nil {
			api.POST("/users/:id/shoes", cfg.ShoeHandler.RegisterShoe)
			api.GET("/users/:id/shoes", cfg.ShoeHandler.ListUserShoes)
		}

		// Rules
		if cfg.RuleHandler != nil {
			api.POST("/rules", cfg.RuleHandler.CreateRule)
			api.GET("/rules", cfg.RuleHandler.ListRules)
			api.POST("/shoe_items", cfg.RuleHandler.AddShoeItems)
			api.GET("/shoe_items", cfg.RuleHandler.ListShoeItems)
			api.POST("/encounter_rules", cfg.RuleHandler.CreateEncounterRule)
			api.GET("/users/:id/encounter_rules", cfg.RuleHandler.ListEncounterRules)
		}

		// Reminders
		if cfg.ReminderHandler != nil {
			api.POST("/reminders", cfg.ReminderHandler.CreateReminder)
			api.GET("/users/:id/reminders", cfg.ReminderHandler.ListUserReminders)
		}

		// Calendar import
		if cfg.CalendarHandler != nil {
			api.POST("/users/:id/calendar_sources", cfg.CalendarHandler.AddSource)
			api.GET("/users/:id/calendar_sources", cfg.CalendarHandler.ListSources)
			api.POST("/users/:id/calendar_sources/sync", cfg.CalendarHandler.SyncUser)
		}
	}

	return r
}
