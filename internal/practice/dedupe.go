package practice

import "github.com/google/uuid"

// LatestAttempts reduces a full history to one attempt per question: the
// record with the latest AttemptedAt wins, with AttemptNumber breaking exact
// timestamp ties. Every calculator goes through this so the mastery,
// alignment, and efficiency views can never disagree about what "the"
// attempt at a question was. Output preserves first-seen question order.
func LatestAttempts(attempts []Attempt) []Attempt {
	if len(attempts) == 0 {
		return nil
	}
	latest := make(map[uuid.UUID]int, len(attempts))
	order := make([]uuid.UUID, 0, len(attempts))
	for i, a := range attempts {
		prev, ok := latest[a.QuestionID]
		if !ok {
			latest[a.QuestionID] = i
			order = append(order, a.QuestionID)
			continue
		}
		p := attempts[prev]
		if a.AttemptedAt.After(p.AttemptedAt) ||
			(a.AttemptedAt.Equal(p.AttemptedAt) && a.AttemptNumber > p.AttemptNumber) {
			latest[a.QuestionID] = i
		}
	}
	out := make([]Attempt, 0, len(order))
	for _, id := range order {
		out = append(out, attempts[latest[id]])
	}
	return out
}

// CatalogIndex maps question id to its catalog entry, defaulting empty
// categories to DefaultDomain. Attempts referencing ids missing from the
// index are orphaned data and get skipped by the calculators.
func CatalogIndex(catalog []CatalogQuestion) map[uuid.UUID]CatalogQuestion {
	idx := make(map[uuid.UUID]CatalogQuestion, len(catalog))
	for _, q := range catalog {
		if q.Category == "" {
			q.Category = DefaultDomain
		}
		idx[q.ID] = q
	}
	return idx
}
