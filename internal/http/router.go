package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/nclexprep-backend/internal/http/handlers"
	httpMW "github.com/yungbote/nclexprep-backend/internal/http/middleware"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	PracticeHandler *httpH.PracticeHandler
	HealthHandler   *httpH.HealthHandler

	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "nclexprep"
	}
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.PracticeHandler != nil {
			api.GET("/students/:id/practice/recommended", cfg.PracticeHandler.GetRecommendedPractice)
			api.GET("/students/:id/analytics/advanced", cfg.PracticeHandler.GetAdvancedAnalytics)
			api.GET("/students/:id/stats/enhanced", cfg.PracticeHandler.GetEnhancedStats)
			api.POST("/students/:id/attempts", cfg.PracticeHandler.RecordAttempt)
		}
	}

	return r
}
