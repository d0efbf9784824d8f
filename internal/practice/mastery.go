package practice

import (
	"math"
	"sort"
)

// ComputeMastery aggregates a user's latest attempts per blueprint domain
// into accuracy and a five-level classification. Domains never attempted do
// not appear; an empty history yields an empty slice.
func ComputeMastery(attempts []Attempt, catalog []CatalogQuestion, bp Blueprint) []DomainMastery {
	idx := CatalogIndex(catalog)
	deduped := LatestAttempts(attempts)

	attempted := make(map[string]int)
	correct := make(map[string]int)
	for _, a := range deduped {
		q, ok := idx[a.QuestionID]
		if !ok {
			continue
		}
		attempted[q.Category]++
		if a.IsCorrect {
			correct[q.Category]++
		}
	}

	out := make([]DomainMastery, 0, len(attempted))
	for domain, n := range attempted {
		c := correct[domain]
		accuracy := 0.0
		if n > 0 {
			accuracy = 100 * float64(c) / float64(n)
		}
		level := classifyMastery(accuracy, n, bp)
		out = append(out, DomainMastery{
			Domain:               domain,
			Accuracy:             accuracy,
			Attempted:            n,
			Correct:              c,
			MasteryLevel:         level,
			QuestionsToNextLevel: questionsToNextLevel(n, c, level, bp),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}

func classifyMastery(accuracy float64, attempted int, bp Blueprint) MasteryLevel {
	switch {
	case attempted < bp.MinAttemptsForLevel:
		return MasteryInsufficientData
	case accuracy >= bp.MasteryThreshold:
		return MasteryMastery
	case accuracy >= bp.ProficientThreshold:
		return MasteryProficient
	case accuracy >= bp.DevelopingThreshold:
		return MasteryDeveloping
	default:
		return MasteryNovice
	}
}

// questionsToNextLevel solves for the minimum number of additional correct
// answers needed to cross the next accuracy threshold. The estimate assumes
// every future attempt is correct, so it is optimistic: a student who keeps
// missing questions will need more than this.
func questionsToNextLevel(attempted, correct int, level MasteryLevel, bp Blueprint) int {
	if attempted < bp.MinAttemptsForLevel {
		return bp.MinAttemptsForLevel - attempted
	}
	var target float64
	switch level {
	case MasteryMastery:
		return 0
	case MasteryProficient:
		target = bp.MasteryThreshold
	case MasteryDeveloping:
		target = bp.ProficientThreshold
	default:
		target = bp.DevelopingThreshold
	}
	if target >= 100 {
		return 0
	}
	x := math.Ceil((target*float64(attempted) - 100*float64(correct)) / (100 - target))
	if x < 0 {
		return 0
	}
	return int(x)
}
