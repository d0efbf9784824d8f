package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/nclexprep-backend/internal/clients/redis"
	"github.com/yungbote/nclexprep-backend/internal/platform/apierr"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/practice"
	"github.com/yungbote/nclexprep-backend/internal/repos"
	"github.com/yungbote/nclexprep-backend/internal/types"
)

const (
	defaultRecommendationCount = 10
	maxRecommendationCount     = 50
)

type AdvancedAnalytics struct {
	DomainMastery      []practice.DomainMastery    `json:"domain_mastery"`
	BlueprintAlignment practice.BlueprintAlignment `json:"blueprint_alignment"`
	TimeEfficiency     practice.TimeEfficiency     `json:"time_efficiency"`
}

type RecordAttemptInput struct {
	QuestionID       uuid.UUID      `json:"question_id"`
	SelectedAnswer   datatypes.JSON `json:"selected_answer"`
	IsCorrect        bool           `json:"is_correct"`
	TimeSpentSeconds int            `json:"time_spent_seconds"`
}

type PracticeService interface {
	GetRecommendedPractice(ctx context.Context, userID uuid.UUID, count int, difficulty string) (*practice.RecommendedPractice, error)
	GetAdvancedAnalytics(ctx context.Context, userID uuid.UUID) (*AdvancedAnalytics, error)
	GetEnhancedStats(ctx context.Context, userID uuid.UUID) (*EnhancedStats, error)
	RecordAttempt(ctx context.Context, userID uuid.UUID, input RecordAttemptInput) (*types.QuestionAttempt, error)
}

type practiceService struct {
	db        *gorm.DB
	log       *logger.Logger
	attempts  repos.AttemptRepo
	questions repos.QuestionRepo
	cache     redisclient.RecommendationCache
	blueprint practice.Blueprint
}

// NewPracticeService wires the analytics core to its collaborators. The
// cache may be nil; everything still works, just recomputed per request.
func NewPracticeService(
	db *gorm.DB,
	log *logger.Logger,
	attempts repos.AttemptRepo,
	questions repos.QuestionRepo,
	cache redisclient.RecommendationCache,
	blueprint practice.Blueprint,
) PracticeService {
	return &practiceService{
		db:        db,
		log:       log.With("service", "PracticeService"),
		attempts:  attempts,
		questions: questions,
		cache:     cache,
		blueprint: blueprint,
	}
}

// loadInputs fetches the attempt history and published catalog in parallel
// and maps them down to the core's input types. A failure of either fetch
// fails the whole call; the core never sees partial data.
func (s *practiceService) loadInputs(ctx context.Context, userID uuid.UUID, difficulty string) ([]practice.Attempt, []practice.CatalogQuestion, error) {
	var (
		attempts []practice.Attempt
		catalog  []practice.CatalogQuestion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.attempts.GetByUserID(gctx, nil, userID)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "load_attempts_failed", err)
		}
		attempts = make([]practice.Attempt, 0, len(rows))
		for _, row := range rows {
			if row == nil {
				continue
			}
			attempts = append(attempts, practice.Attempt{
				QuestionID:       row.QuestionID,
				AttemptedAt:      row.AttemptedAt,
				IsCorrect:        row.IsCorrect,
				TimeSpentSeconds: row.TimeSpentSeconds,
				AttemptNumber:    row.AttemptNumber,
			})
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.questions.ListPublished(gctx, nil, difficulty)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "load_catalog_failed", err)
		}
		catalog = make([]practice.CatalogQuestion, 0, len(rows))
		for _, row := range rows {
			if row == nil {
				continue
			}
			catalog = append(catalog, practice.CatalogQuestion{
				ID:           row.ID,
				Category:     row.Category,
				QuestionType: row.QuestionType,
				Difficulty:   row.Difficulty,
			})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return attempts, catalog, nil
}

func (s *practiceService) GetRecommendedPractice(ctx context.Context, userID uuid.UUID, count int, difficulty string) (*practice.RecommendedPractice, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_user_id", nil)
	}
	if count <= 0 {
		count = defaultRecommendationCount
	}
	if count > maxRecommendationCount {
		count = maxRecommendationCount
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID, count, difficulty)
		if err != nil {
			s.log.Warn("Recommendation cache read failed", "error", err, "user_id", userID)
		} else if cached != nil {
			return cached, nil
		}
	}

	attempts, catalog, err := s.loadInputs(ctx, userID, difficulty)
	if err != nil {
		return nil, err
	}

	rec := practice.ComputeRecommendations(userID, attempts, catalog, count, difficulty, s.blueprint)

	if s.cache != nil {
		if err := s.cache.Set(ctx, rec, count, difficulty); err != nil {
			s.log.Warn("Recommendation cache write failed", "error", err, "user_id", userID)
		}
	}
	return &rec, nil
}

func (s *practiceService) GetAdvancedAnalytics(ctx context.Context, userID uuid.UUID) (*AdvancedAnalytics, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_user_id", nil)
	}

	attempts, catalog, err := s.loadInputs(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	return &AdvancedAnalytics{
		DomainMastery:      practice.ComputeMastery(attempts, catalog, s.blueprint),
		BlueprintAlignment: practice.ComputeBlueprintAlignment(attempts, catalog, s.blueprint),
		TimeEfficiency:     practice.ComputeTimeEfficiency(attempts, catalog, s.blueprint),
	}, nil
}

func (s *practiceService) GetEnhancedStats(ctx context.Context, userID uuid.UUID) (*EnhancedStats, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_user_id", nil)
	}

	attempts, catalog, err := s.loadInputs(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	stats := buildEnhancedStats(attempts, catalog, timeNow())
	return &stats, nil
}

// RecordAttempt appends a submission to the attempt log. The attempt
// number is assigned here from the existing count per (user, question);
// clients never pick their own.
func (s *practiceService) RecordAttempt(ctx context.Context, userID uuid.UUID, input RecordAttemptInput) (*types.QuestionAttempt, error) {
	if userID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_user_id", nil)
	}
	if input.QuestionID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_question_id", nil)
	}
	if input.TimeSpentSeconds < 0 {
		return nil, apierr.New(http.StatusBadRequest, "invalid_time_spent", nil)
	}

	questions, err := s.questions.GetByIDs(ctx, nil, []uuid.UUID{input.QuestionID})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_question_failed", err)
	}
	if len(questions) == 0 || questions[0] == nil {
		return nil, apierr.New(http.StatusNotFound, "question_not_found", nil)
	}

	var created *types.QuestionAttempt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prior, err := s.attempts.CountByUserAndQuestion(ctx, tx, userID, input.QuestionID)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "count_attempts_failed", err)
		}
		row := &types.QuestionAttempt{
			UserID:           userID,
			QuestionID:       input.QuestionID,
			AttemptedAt:      timeNow(),
			SelectedAnswer:   input.SelectedAnswer,
			IsCorrect:        input.IsCorrect,
			TimeSpentSeconds: input.TimeSpentSeconds,
			AttemptNumber:    int(prior) + 1,
		}
		rows, err := s.attempts.Create(ctx, tx, []*types.QuestionAttempt{row})
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "create_attempt_failed", err)
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The new attempt changes what should be recommended next.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.log.Warn("Recommendation cache invalidation failed", "error", err, "user_id", userID)
		}
	}
	return created, nil
}
