package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/yungbote/nclexprep-backend/internal/http"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:             log,
		PracticeHandler: handlers.Practice,
		HealthHandler:   handlers.Health,
		ServiceName:     cfg.ServiceName,
	})
}
