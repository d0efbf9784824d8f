package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/nclexprep-backend/internal/platform/apierr"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/practice"
	"github.com/yungbote/nclexprep-backend/internal/services"
	"github.com/yungbote/nclexprep-backend/internal/types"
)

type stubPracticeService struct {
	rec *practice.RecommendedPractice
	err error
}

func (s *stubPracticeService) GetRecommendedPractice(ctx context.Context, userID uuid.UUID, count int, difficulty string) (*practice.RecommendedPractice, error) {
	return s.rec, s.err
}

func (s *stubPracticeService) GetAdvancedAnalytics(ctx context.Context, userID uuid.UUID) (*services.AdvancedAnalytics, error) {
	return &services.AdvancedAnalytics{}, s.err
}

func (s *stubPracticeService) GetEnhancedStats(ctx context.Context, userID uuid.UUID) (*services.EnhancedStats, error) {
	return &services.EnhancedStats{}, s.err
}

func (s *stubPracticeService) RecordAttempt(ctx context.Context, userID uuid.UUID, input services.RecordAttemptInput) (*types.QuestionAttempt, error) {
	return &types.QuestionAttempt{UserID: userID, QuestionID: input.QuestionID, AttemptNumber: 1}, s.err
}

func newTestRouter(t *testing.T, svc services.PracticeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	h := NewPracticeHandler(log, svc)
	r := gin.New()
	r.GET("/api/students/:id/practice/recommended", h.GetRecommendedPractice)
	return r
}

func TestGetRecommendedPracticeRejectsBadID(t *testing.T) {
	r := newTestRouter(t, &stubPracticeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/not-a-uuid/practice/recommended", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed student id, got %d", w.Code)
	}
}

func TestGetRecommendedPracticeRejectsBadCount(t *testing.T) {
	r := newTestRouter(t, &stubPracticeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+uuid.New().String()+"/practice/recommended?count=zero", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric count, got %d", w.Code)
	}
}

func TestGetRecommendedPracticeOK(t *testing.T) {
	userID := uuid.New()
	r := newTestRouter(t, &stubPracticeService{rec: &practice.RecommendedPractice{UserID: userID}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+userID.String()+"/practice/recommended", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestGetRecommendedPracticePropagatesServiceStatus(t *testing.T) {
	r := newTestRouter(t, &stubPracticeService{err: apierr.New(http.StatusNotFound, "question_not_found", nil)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+uuid.New().String()+"/practice/recommended", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected service status to pass through, got %d", w.Code)
	}
}
