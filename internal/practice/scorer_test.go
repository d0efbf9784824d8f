package practice

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestScorerWeakAreaBoost(t *testing.T) {
	bp := DefaultBlueprint()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-48 * time.Hour)

	// 10 attempts in one domain at 50% accuracy.
	attempts, catalog := makeHistory("Pharmacological Therapies", 10, 5, start)
	candidate := CatalogQuestion{ID: uuid.New(), Category: "Pharmacological Therapies", QuestionType: "multiple_choice"}
	catalog = append(catalog, candidate)

	sc := newScoringContext(attempts, catalog, bp, now)
	got := scoreQuestion(sc, candidate)

	// +40 weak area, -10 over-practiced (all volume sits in this domain),
	// +5 never attempted.
	if got.Score != 35 {
		t.Fatalf("expected score 35, got %d", got.Score)
	}
	if got.Reason != ReasonWeakArea {
		t.Fatalf("expected weak_area, got %s", got.Reason)
	}
}

func TestScorerFreshUserGetsBlueprintGap(t *testing.T) {
	bp := DefaultBlueprint()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	candidate := CatalogQuestion{ID: uuid.New(), Category: "Management of Care", QuestionType: "sata"}

	sc := newScoringContext(nil, []CatalogQuestion{candidate}, bp, now)
	got := scoreQuestion(sc, candidate)

	// +5 unseen domain, +30 severe blueprint gap, +5 never attempted. The
	// gap rule claims the reason because the running score was still low.
	if got.Score != 40 {
		t.Fatalf("expected score 40, got %d", got.Score)
	}
	if got.Reason != ReasonBlueprintGap {
		t.Fatalf("expected blueprint_gap, got %s", got.Reason)
	}
}

func TestScorerRecentMissGetsRetry(t *testing.T) {
	bp := DefaultBlueprint()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-30 * 24 * time.Hour)

	// Solid history in the domain so the weak-area rule stays quiet.
	attempts, catalog := makeHistory("Physiological Adaptation", 20, 18, start)

	// One question missed two days ago.
	missed := CatalogQuestion{ID: uuid.New(), Category: "Physiological Adaptation", QuestionType: "multiple_choice"}
	catalog = append(catalog, missed)
	attempts = append(attempts, Attempt{
		QuestionID:    missed.ID,
		AttemptedAt:   now.Add(-48 * time.Hour),
		IsCorrect:     false,
		AttemptNumber: 1,
	})

	sc := newScoringContext(attempts, catalog, bp, now)
	got := scoreQuestion(sc, missed)

	// -10 over-practiced, +5 attempted 2 days ago, +10 last attempt missed.
	if got.Score != 5 {
		t.Fatalf("expected score 5, got %d", got.Score)
	}
}

func TestScorerIdempotent(t *testing.T) {
	bp := DefaultBlueprint()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-20 * 24 * time.Hour)

	a1, c1 := makeHistory("Management of Care", 12, 7, start)
	a2, c2 := makeHistory("Safety and Infection Control", 6, 5, start.Add(time.Hour))
	attempts := append(a1, a2...)
	catalog := append(c1, c2...)
	catalog = append(catalog,
		CatalogQuestion{ID: uuid.New(), Category: "Basic Care and Comfort", QuestionType: "cloze"},
		CatalogQuestion{ID: uuid.New(), Category: "Other", QuestionType: "matrix"},
	)

	first := scoreAll(attempts, catalog, bp, now)
	second := scoreAll(attempts, catalog, bp, now)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("scoring is not deterministic at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestScorerSpacedRepetitionClaim(t *testing.T) {
	bp := DefaultBlueprint()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Strong, blueprint-heavy history in Other (weight 24) so neither the
	// weak-area nor the gap rule dominates this domain.
	start := now.Add(-60 * 24 * time.Hour)
	attempts, catalog := makeHistory("Other", 20, 19, start)

	// A question from that history last seen three weeks ago.
	stale := catalog[0]
	sc := newScoringContext(attempts, catalog, bp, now)
	got := scoreQuestion(sc, stale)

	if got.Reason != ReasonSpacedRepetition {
		t.Fatalf("expected spaced_repetition, got %s (score %d)", got.Reason, got.Score)
	}
}
