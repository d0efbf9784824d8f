package app

import (
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/utils"
)

type Config struct {
	Port          string
	DBDriver      string
	BlueprintPath string
	CacheEnabled  bool
	ServiceName   string
	Environment   string
	Version       string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:          utils.GetEnv("PORT", "8080", log),
		DBDriver:      utils.GetEnv("DB_DRIVER", "postgres", log),
		BlueprintPath: utils.GetEnv("BLUEPRINT_CONFIG_PATH", "", log),
		CacheEnabled:  utils.GetEnvAsBool("CACHE_ENABLED", true, log),
		ServiceName:   utils.GetEnv("SERVICE_NAME", "nclexprep-backend", log),
		Environment:   utils.GetEnv("ENVIRONMENT", "development", log),
		Version:       utils.GetEnv("SERVICE_VERSION", "dev", log),
	}
}
