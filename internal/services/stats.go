package services

import (
	"sort"
	"time"

	"github.com/yungbote/nclexprep-backend/internal/practice"
)

// timeNow is swapped out by tests.
var timeNow = func() time.Time { return time.Now().UTC() }

type QuestionTypeStat struct {
	QuestionType string  `json:"question_type"`
	Attempted    int     `json:"attempted"`
	Correct      int     `json:"correct"`
	Accuracy     float64 `json:"accuracy"`
}

type EnhancedStats struct {
	TotalAttempts      int                `json:"total_attempts"`
	UniqueQuestions    int                `json:"unique_questions"`
	OverallAccuracy    float64            `json:"overall_accuracy"`
	ByQuestionType     []QuestionTypeStat `json:"by_question_type"`
	StreakDays         int                `json:"streak_days"`
	AccuracyLast7Days  float64            `json:"accuracy_last_7_days"`
	AccuracyLast30Days float64            `json:"accuracy_last_30_days"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

func buildEnhancedStats(attempts []practice.Attempt, catalog []practice.CatalogQuestion, now time.Time) EnhancedStats {
	idx := practice.CatalogIndex(catalog)
	deduped := practice.LatestAttempts(attempts)

	correct := 0
	typeAttempted := make(map[string]int)
	typeCorrect := make(map[string]int)
	for _, a := range deduped {
		if a.IsCorrect {
			correct++
		}
		q, ok := idx[a.QuestionID]
		if !ok {
			continue
		}
		typeAttempted[q.QuestionType]++
		if a.IsCorrect {
			typeCorrect[q.QuestionType]++
		}
	}

	byType := make([]QuestionTypeStat, 0, len(typeAttempted))
	for qt, n := range typeAttempted {
		c := typeCorrect[qt]
		byType = append(byType, QuestionTypeStat{
			QuestionType: qt,
			Attempted:    n,
			Correct:      c,
			Accuracy:     100 * float64(c) / float64(n),
		})
	}
	sort.Slice(byType, func(i, j int) bool { return byType[i].QuestionType < byType[j].QuestionType })

	overall := 0.0
	if len(deduped) > 0 {
		overall = 100 * float64(correct) / float64(len(deduped))
	}

	times := make([]time.Time, 0, len(attempts))
	for _, a := range attempts {
		times = append(times, a.AttemptedAt)
	}

	return EnhancedStats{
		TotalAttempts:      len(attempts),
		UniqueQuestions:    len(deduped),
		OverallAccuracy:    overall,
		ByQuestionType:     byType,
		StreakDays:         practiceStreakDays(times, now),
		AccuracyLast7Days:  windowAccuracy(attempts, 7, now),
		AccuracyLast30Days: windowAccuracy(attempts, 30, now),
		GeneratedAt:        now,
	}
}

// practiceStreakDays counts consecutive calendar days with at least one
// attempt, walking back from today. A streak that ended yesterday still
// counts; the student has until midnight to extend it.
func practiceStreakDays(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}
	days := make(map[string]bool, len(times))
	for _, ts := range times {
		days[ts.UTC().Format("2006-01-02")] = true
	}

	day := now.UTC()
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !days[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// windowAccuracy is the raw submission accuracy over the trailing window,
// deliberately not deduplicated: it tracks how the student is trending,
// retries included.
func windowAccuracy(attempts []practice.Attempt, days int, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -days)
	total, correct := 0, 0
	for _, a := range attempts {
		if a.AttemptedAt.Before(cutoff) || a.AttemptedAt.After(now) {
			continue
		}
		total++
		if a.IsCorrect {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}
