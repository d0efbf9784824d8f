package app

import (
	httpH "github.com/yungbote/nclexprep-backend/internal/http/handlers"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
)

type Handlers struct {
	Practice *httpH.PracticeHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Practice: httpH.NewPracticeHandler(log, serviceset.Practice),
		Health:   httpH.NewHealthHandler(),
	}
}
