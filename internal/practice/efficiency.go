package practice

import (
	"math"
	"sort"
)

// ComputeTimeEfficiency classifies each domain into a speed/accuracy
// quadrant and derives an aggregate efficiency index. Domains with fewer
// attempts than the blueprint's minimum sample are left out of the
// per-domain points but still count toward the aggregate.
func ComputeTimeEfficiency(attempts []Attempt, catalog []CatalogQuestion, bp Blueprint) TimeEfficiency {
	idx := CatalogIndex(catalog)
	deduped := LatestAttempts(attempts)

	type bucket struct {
		attempted int
		correct   int
		seconds   int
	}
	perDomain := make(map[string]*bucket)
	overall := bucket{}
	for _, a := range deduped {
		q, ok := idx[a.QuestionID]
		if !ok {
			continue
		}
		b := perDomain[q.Category]
		if b == nil {
			b = &bucket{}
			perDomain[q.Category] = b
		}
		b.attempted++
		overall.attempted++
		if a.IsCorrect {
			b.correct++
			overall.correct++
		}
		b.seconds += a.TimeSpentSeconds
		overall.seconds += a.TimeSpentSeconds
	}

	points := make([]TimeEfficiencyPoint, 0, len(perDomain))
	for domain, b := range perDomain {
		if b.attempted < bp.EfficiencyMinSample {
			continue
		}
		avg := float64(b.seconds) / float64(b.attempted)
		acc := 100 * float64(b.correct) / float64(b.attempted)
		points = append(points, TimeEfficiencyPoint{
			Domain:      domain,
			AverageTime: avg,
			Accuracy:    acc,
			Attempted:   b.attempted,
			Quadrant:    classifyQuadrant(avg, acc),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Domain < points[j].Domain })

	result := TimeEfficiency{Points: points}
	if overall.attempted == 0 {
		return result
	}

	overallAvg := float64(overall.seconds) / float64(overall.attempted)
	overallAcc := 100 * float64(overall.correct) / float64(overall.attempted)
	if overallAvg > 0 {
		result.Index = math.Round((overallAcc/(overallAvg/60))*10*10) / 10
	}
	result.SpeedIssue = classifySpeedIssue(overallAvg, overallAcc)
	return result
}

func classifyQuadrant(averageTime, accuracy float64) Quadrant {
	fast := averageTime < 60
	accurate := accuracy >= 70
	switch {
	case fast && accurate:
		return QuadrantFastAccurate
	case !fast && accurate:
		return QuadrantSlowAccurate
	case fast && !accurate:
		return QuadrantFastInaccurate
	default:
		return QuadrantSlowInaccurate
	}
}

func classifySpeedIssue(averageTime, accuracy float64) *SpeedIssue {
	var issue SpeedIssue
	switch {
	case averageTime < 30 && accuracy < 70:
		issue = SpeedTooFast
	case averageTime > 120:
		issue = SpeedTooSlow
	case averageTime >= 60 && averageTime <= 90 && accuracy >= 70:
		issue = SpeedOptimal
	default:
		return nil
	}
	return &issue
}
