package practice

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ComputeRecommendations scores every published question for the user,
// selects a diverse top slice, and packages it with the study-plan summary.
// The result is recomputed on every call; ExpiresAt just tells the caller
// when a cached copy goes stale.
func ComputeRecommendations(userID uuid.UUID, attempts []Attempt, catalog []CatalogQuestion, count int, difficulty string, bp Blueprint) RecommendedPractice {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(now.UnixNano()))
	return recommendAt(userID, attempts, catalog, count, difficulty, bp, now, rng)
}

func recommendAt(userID uuid.UUID, attempts []Attempt, catalog []CatalogQuestion, count int, difficulty string, bp Blueprint, now time.Time, rng *rand.Rand) RecommendedPractice {
	candidates := catalog
	if difficulty != "" && difficulty != "all" {
		candidates = make([]CatalogQuestion, 0, len(catalog))
		for _, q := range catalog {
			if q.Difficulty == difficulty {
				candidates = append(candidates, q)
			}
		}
	}

	scored := scoreAll(attempts, candidates, bp, now)
	selected := selectDiverse(scored, count, bp, rng)

	questions := make([]RecommendedQuestion, 0, len(selected))
	reviewCount, newCount := 0, 0
	for _, s := range selected {
		questions = append(questions, RecommendedQuestion{
			QuestionID:    s.QuestionID,
			PriorityScore: s.Score,
			Reason:        s.Reason,
			Domain:        s.Domain,
			ItemType:      s.ItemType,
		})
		if s.Reason == ReasonNew {
			newCount++
		} else {
			reviewCount++
		}
	}

	weakAreas := make([]string, 0)
	for _, m := range ComputeMastery(attempts, catalog, bp) {
		if m.Attempted >= bp.MinAttemptsForLevel && m.Accuracy < 70 {
			weakAreas = append(weakAreas, m.Domain)
		}
	}

	blueprintGaps := make([]string, 0)
	for _, cat := range ComputeBlueprintAlignment(attempts, catalog, bp).Categories {
		if cat.Status == StatusUnderPracticed && cat.Gap < -bp.SevereGap {
			blueprintGaps = append(blueprintGaps, cat.Domain)
		}
	}

	return RecommendedPractice{
		UserID:           userID,
		Questions:        questions,
		WeakAreas:        weakAreas,
		BlueprintGaps:    blueprintGaps,
		ReviewCount:      reviewCount,
		NewCount:         newCount,
		EstimatedMinutes: int(math.Round(float64(len(selected)) * bp.MinutesPerQuestion)),
		GeneratedAt:      now,
		ExpiresAt:        now.Add(bp.TTL()),
	}
}
