package practice

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func scoredSet(domains []string, types []string, perDomain int, baseScore int) []ScoredQuestion {
	out := make([]ScoredQuestion, 0, len(domains)*perDomain)
	score := baseScore
	for _, d := range domains {
		for i := 0; i < perDomain; i++ {
			out = append(out, ScoredQuestion{
				QuestionID: uuid.New(),
				Domain:     d,
				ItemType:   types[i%len(types)],
				Score:      score,
				Reason:     ReasonNew,
			})
			score--
		}
	}
	return out
}

func TestSelectorRespectsCaps(t *testing.T) {
	bp := DefaultBlueprint()
	rng := rand.New(rand.NewSource(1))
	domains := []string{"Management of Care", "Pharmacological Therapies", "Physiological Adaptation", "Other"}
	itemTypes := []string{"multiple_choice", "sata", "cloze", "matrix"}
	scored := scoredSet(domains, itemTypes, 5, 100)

	count := 10
	selected := selectDiverse(scored, count, bp, rng)
	if len(selected) != count {
		t.Fatalf("expected %d selections, got %d", count, len(selected))
	}

	domainCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	for _, s := range selected {
		domainCounts[s.Domain]++
		typeCounts[s.ItemType]++
	}
	for d, n := range domainCounts {
		if n > 4 { // ceil(0.4 * 10)
			t.Fatalf("domain %s over cap: %d", d, n)
		}
	}
	for ty, n := range typeCounts {
		if n > 3 { // ceil(0.3 * 10)
			t.Fatalf("item type %s over cap: %d", ty, n)
		}
	}
}

func TestSelectorTwoDomainCatalog(t *testing.T) {
	bp := DefaultBlueprint()
	rng := rand.New(rand.NewSource(2))
	domains := []string{"Management of Care", "Other"}
	itemTypes := []string{"multiple_choice", "sata", "cloze", "matrix"}
	scored := scoredSet(domains, itemTypes, 10, 100)

	selected := selectDiverse(scored, 20, bp, rng)
	if len(selected) == 0 {
		t.Fatalf("expected selections despite the thin catalog")
	}

	domainCounts := make(map[string]int)
	for _, s := range selected {
		domainCounts[s.Domain]++
	}
	if len(domainCounts) > 2 {
		t.Fatalf("selector invented a domain: %v", domainCounts)
	}
	for d, n := range domainCounts {
		if n > 8 { // ceil(0.4 * 20)
			t.Fatalf("domain %s over cap: %d", d, n)
		}
	}
}

func TestSelectorBackfillsThirdDomain(t *testing.T) {
	bp := DefaultBlueprint()
	rng := rand.New(rand.NewSource(3))

	// Two strong domains fill the greedy pass; one weak domain exists.
	scored := scoredSet(
		[]string{"Management of Care", "Pharmacological Therapies"},
		[]string{"multiple_choice", "sata", "cloze", "matrix", "highlight", "bowtie"},
		3, 100,
	)
	weak := ScoredQuestion{
		QuestionID: uuid.New(),
		Domain:     "Psychosocial Integrity",
		ItemType:   "trend",
		Score:      1,
		Reason:     ReasonNew,
	}
	scored = append(scored, weak)

	selected := selectDiverse(scored, 6, bp, rng)
	domainCounts := make(map[string]int)
	found := false
	for _, s := range selected {
		domainCounts[s.Domain]++
		if s.QuestionID == weak.QuestionID {
			found = true
		}
	}
	if len(domainCounts) < 3 {
		t.Fatalf("expected backfill to reach 3 domains, got %v", domainCounts)
	}
	if !found {
		t.Fatalf("expected the low-scored third-domain question to be backfilled")
	}
	if len(selected) != 6 {
		t.Fatalf("expected 6 selections, got %d", len(selected))
	}
}

func TestSelectorShuffleKeepsMembership(t *testing.T) {
	bp := DefaultBlueprint()
	domains := []string{"Management of Care", "Pharmacological Therapies", "Physiological Adaptation"}
	itemTypes := []string{"multiple_choice", "sata", "cloze", "matrix"}
	scored := scoredSet(domains, itemTypes, 4, 50)

	first := selectDiverse(scored, 6, bp, rand.New(rand.NewSource(4)))
	second := selectDiverse(scored, 6, bp, rand.New(rand.NewSource(5)))

	ids := func(qs []ScoredQuestion) map[uuid.UUID]bool {
		m := make(map[uuid.UUID]bool, len(qs))
		for _, q := range qs {
			m[q.QuestionID] = true
		}
		return m
	}
	a, b := ids(first), ids(second)
	if len(a) != len(b) {
		t.Fatalf("selection size changed across seeds: %d vs %d", len(a), len(b))
	}
	for id := range a {
		if !b[id] {
			t.Fatalf("selection membership changed with the shuffle seed")
		}
	}
}
