package practice

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func makeTimedHistory(domain string, times []int, correct int, start time.Time) ([]Attempt, []CatalogQuestion) {
	attempts := make([]Attempt, 0, len(times))
	catalog := make([]CatalogQuestion, 0, len(times))
	for i, secs := range times {
		qid := uuid.New()
		catalog = append(catalog, CatalogQuestion{ID: qid, Category: domain, QuestionType: "multiple_choice"})
		attempts = append(attempts, Attempt{
			QuestionID:       qid,
			AttemptedAt:      start.Add(time.Duration(i) * time.Minute),
			IsCorrect:        i < correct,
			TimeSpentSeconds: secs,
			AttemptNumber:    1,
		})
	}
	return attempts, catalog
}

func TestEfficiencyFastAccurateQuadrant(t *testing.T) {
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	// Five attempts averaging 45s at 80% accuracy.
	attempts, catalog := makeTimedHistory("Reduction of Risk Potential", []int{40, 45, 50, 45, 45}, 4, start)

	out := ComputeTimeEfficiency(attempts, catalog, DefaultBlueprint())
	if len(out.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(out.Points))
	}
	p := out.Points[0]
	if p.Quadrant != QuadrantFastAccurate {
		t.Fatalf("expected fast_accurate, got %s", p.Quadrant)
	}
	if p.AverageTime != 45 {
		t.Fatalf("expected average time 45, got %v", p.AverageTime)
	}
	if out.SpeedIssue != nil {
		t.Fatalf("expected no speed issue, got %s", *out.SpeedIssue)
	}
}

func TestEfficiencySmallSamplesExcluded(t *testing.T) {
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	attempts, catalog := makeTimedHistory("Psychosocial Integrity", []int{30, 30, 30, 30}, 4, start)

	out := ComputeTimeEfficiency(attempts, catalog, DefaultBlueprint())
	if len(out.Points) != 0 {
		t.Fatalf("domains under the minimum sample should be excluded, got %d points", len(out.Points))
	}
	// The aggregate index still reflects the attempts.
	if out.Index == 0 {
		t.Fatalf("expected a nonzero aggregate index")
	}
}

func TestEfficiencyEmptyHistory(t *testing.T) {
	out := ComputeTimeEfficiency(nil, nil, DefaultBlueprint())
	if out.Index != 0 {
		t.Fatalf("expected index 0 with no data, got %v", out.Index)
	}
	if out.SpeedIssue != nil {
		t.Fatalf("expected nil speed issue with no data, got %s", *out.SpeedIssue)
	}
	if len(out.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(out.Points))
	}
}

func TestEfficiencySpeedIssues(t *testing.T) {
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

	// Rushing: under 30s average with under 70% accuracy.
	attempts, catalog := makeTimedHistory("Other", []int{20, 20, 25, 20, 25}, 2, start)
	out := ComputeTimeEfficiency(attempts, catalog, DefaultBlueprint())
	if out.SpeedIssue == nil || *out.SpeedIssue != SpeedTooFast {
		t.Fatalf("expected too_fast, got %v", out.SpeedIssue)
	}

	// Crawling: over 120s average.
	attempts, catalog = makeTimedHistory("Other", []int{150, 140, 160, 130, 150}, 5, start)
	out = ComputeTimeEfficiency(attempts, catalog, DefaultBlueprint())
	if out.SpeedIssue == nil || *out.SpeedIssue != SpeedTooSlow {
		t.Fatalf("expected too_slow, got %v", out.SpeedIssue)
	}

	// In the pocket: 60-90s average with at least 70% accuracy.
	attempts, catalog = makeTimedHistory("Other", []int{70, 75, 80, 70, 75}, 5, start)
	out = ComputeTimeEfficiency(attempts, catalog, DefaultBlueprint())
	if out.SpeedIssue == nil || *out.SpeedIssue != SpeedOptimal {
		t.Fatalf("expected optimal, got %v", out.SpeedIssue)
	}
}
