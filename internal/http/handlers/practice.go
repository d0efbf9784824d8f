package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/nclexprep-backend/internal/http/response"
	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/services"
)

type PracticeHandler struct {
	log *logger.Logger
	svc services.PracticeService
}

func NewPracticeHandler(log *logger.Logger, svc services.PracticeService) *PracticeHandler {
	return &PracticeHandler{
		log: log.With("handler", "PracticeHandler"),
		svc: svc,
	}
}

func studentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_student_id", err)
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/students/:id/practice/recommended
func (h *PracticeHandler) GetRecommendedPractice(c *gin.Context) {
	userID, ok := studentID(c)
	if !ok {
		return
	}

	count := 0
	if raw := strings.TrimSpace(c.Query("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_count", err)
			return
		}
		count = n
	}
	difficulty := strings.TrimSpace(c.Query("difficulty"))

	rec, err := h.svc.GetRecommendedPractice(c.Request.Context(), userID, count, difficulty)
	if err != nil {
		h.log.Error("GetRecommendedPractice failed", "error", err, "user_id", userID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, rec)
}

// GET /api/students/:id/analytics/advanced
func (h *PracticeHandler) GetAdvancedAnalytics(c *gin.Context) {
	userID, ok := studentID(c)
	if !ok {
		return
	}

	analytics, err := h.svc.GetAdvancedAnalytics(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("GetAdvancedAnalytics failed", "error", err, "user_id", userID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, analytics)
}

// GET /api/students/:id/stats/enhanced
func (h *PracticeHandler) GetEnhancedStats(c *gin.Context) {
	userID, ok := studentID(c)
	if !ok {
		return
	}

	stats, err := h.svc.GetEnhancedStats(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("GetEnhancedStats failed", "error", err, "user_id", userID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, stats)
}

// POST /api/students/:id/attempts
func (h *PracticeHandler) RecordAttempt(c *gin.Context) {
	userID, ok := studentID(c)
	if !ok {
		return
	}

	var input services.RecordAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	attempt, err := h.svc.RecordAttempt(c.Request.Context(), userID, input)
	if err != nil {
		h.log.Error("RecordAttempt failed", "error", err, "user_id", userID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, attempt)
}
