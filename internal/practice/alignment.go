package practice

import "math"

// ComputeBlueprintAlignment compares the share of a user's latest-attempt
// volume in each domain against the fixed exam weights. Every domain in the
// blueprint gets a row, attempted or not.
func ComputeBlueprintAlignment(attempts []Attempt, catalog []CatalogQuestion, bp Blueprint) BlueprintAlignment {
	idx := CatalogIndex(catalog)
	deduped := LatestAttempts(attempts)

	perDomain := make(map[string]int)
	total := 0
	for _, a := range deduped {
		q, ok := idx[a.QuestionID]
		if !ok {
			continue
		}
		perDomain[q.Category]++
		total++
	}

	categories := make([]BlueprintCategory, 0, len(bp.Weights))
	under := make([]string, 0)
	var scoreSum float64
	for _, w := range bp.Weights {
		practicePct := 0.0
		if total > 0 {
			practicePct = 100 * float64(perDomain[w.Domain]) / float64(total)
		}
		gap := practicePct - w.Weight

		status := StatusAligned
		switch {
		case gap > bp.AlignmentBand:
			status = StatusOverPracticed
		case gap < -bp.AlignmentBand:
			status = StatusUnderPracticed
		}
		if status == StatusUnderPracticed {
			under = append(under, w.Domain)
		}

		categories = append(categories, BlueprintCategory{
			Domain:       w.Domain,
			NCLEXWeight:  w.Weight,
			YourPractice: practicePct,
			Gap:          gap,
			Status:       status,
		})
		scoreSum += 100 - math.Abs(gap)
	}

	score := 0
	if len(bp.Weights) > 0 {
		score = int(math.Round(scoreSum / float64(len(bp.Weights))))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return BlueprintAlignment{
		Categories:               categories,
		AlignmentScore:           score,
		UnderPracticedCategories: under,
	}
}
