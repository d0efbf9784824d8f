package practice

import (
	"math"
	"math/rand"
	"sort"
)

// selectDiverse admits the highest-scored candidates while capping how much
// of the result any one domain or item type may occupy. The caps are soft:
// when the candidate pool itself spans fewer domains than the minimum, the
// selector returns what exists rather than failing. Output order is
// shuffled; only membership is meaningful.
func selectDiverse(scored []ScoredQuestion, count int, bp Blueprint, rng *rand.Rand) []ScoredQuestion {
	if count <= 0 || len(scored) == 0 {
		return nil
	}

	ranked := make([]ScoredQuestion, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].QuestionID.String() < ranked[j].QuestionID.String()
	})

	domainCap := int(math.Ceil(bp.DomainShareCap * float64(count)))
	typeCap := int(math.Ceil(bp.TypeShareCap * float64(count)))

	selected := make([]ScoredQuestion, 0, count)
	picked := make(map[int]bool, count)
	domainCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	for i, cand := range ranked {
		if len(selected) >= count {
			break
		}
		if domainCounts[cand.Domain] >= domainCap || typeCounts[cand.ItemType] >= typeCap {
			continue
		}
		selected = append(selected, cand)
		picked[i] = true
		domainCounts[cand.Domain]++
		typeCounts[cand.ItemType]++
	}

	// Backfill for topic variety: when the greedy pass landed on fewer
	// domains than the minimum but other domains exist in the pool, pull
	// them in ignoring the caps.
	for i, cand := range ranked {
		if len(domainCounts) >= bp.MinDistinctDomains {
			break
		}
		if picked[i] || domainCounts[cand.Domain] > 0 {
			continue
		}
		if len(selected) < count {
			selected = append(selected, cand)
		} else if !evictFromLargestDomain(&selected, domainCounts, typeCounts) {
			break
		} else {
			selected = append(selected, cand)
		}
		picked[i] = true
		domainCounts[cand.Domain]++
		typeCounts[cand.ItemType]++
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

// evictFromLargestDomain drops the lowest-scored selection belonging to the
// most-represented domain, making room for a backfill candidate. Returns
// false when no domain holds more than one slot.
func evictFromLargestDomain(selected *[]ScoredQuestion, domainCounts, typeCounts map[string]int) bool {
	largest := ""
	for domain, n := range domainCounts {
		if n > 1 && (largest == "" || n > domainCounts[largest]) {
			largest = domain
		}
	}
	if largest == "" {
		return false
	}
	victim := -1
	for i, s := range *selected {
		if s.Domain != largest {
			continue
		}
		if victim == -1 || s.Score < (*selected)[victim].Score {
			victim = i
		}
	}
	if victim == -1 {
		return false
	}
	v := (*selected)[victim]
	domainCounts[v.Domain]--
	typeCounts[v.ItemType]--
	*selected = append((*selected)[:victim], (*selected)[victim+1:]...)
	return true
}
