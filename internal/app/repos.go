package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/repos"
)

type Repos struct {
	Question repos.QuestionRepo
	Attempt  repos.AttemptRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Question: repos.NewQuestionRepo(db, log),
		Attempt:  repos.NewAttemptRepo(db, log),
	}
}
