package app

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	redisclient "github.com/yungbote/nclexprep-backend/internal/clients/redis"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/practice"
	"github.com/yungbote/nclexprep-backend/internal/services"
)

type Services struct {
	Practice services.PracticeService
	Cache    redisclient.RecommendationCache
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	blueprint, err := practice.LoadBlueprint(cfg.BlueprintPath)
	if err != nil {
		return Services{}, fmt.Errorf("load blueprint: %w", err)
	}

	// The cache is optional. When Redis is down or unconfigured the
	// service recomputes every request.
	var cache redisclient.RecommendationCache
	if cfg.CacheEnabled && strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		cache, err = redisclient.NewRecommendationCache(log)
		if err != nil {
			log.Warn("Recommendation cache unavailable, continuing without it", "error", err)
			cache = nil
		}
	}

	practiceSvc := services.NewPracticeService(db, log, reposet.Attempt, reposet.Question, cache, blueprint)

	return Services{
		Practice: practiceSvc,
		Cache:    cache,
	}, nil
}
