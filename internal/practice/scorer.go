package practice

import (
	"time"

	"github.com/google/uuid"
)

// Reason priorities. When several rules nominate a reason for the same
// question, the highest priority wins; ReasonNew is the floor every
// candidate starts from.
const (
	priorityNew              = 10
	priorityItemType         = 20
	prioritySpacedRepetition = 30
	priorityBlueprintGap     = 40
	priorityWeakArea         = 50
)

type scoringContext struct {
	bp             Blueprint
	now            time.Time
	domainAccuracy map[string]float64
	domainSeen     map[string]bool
	alignment      map[string]BlueprintCategory
	lastAttempt    map[uuid.UUID]Attempt
	typeShare      map[string]float64
	seenTypes      int
}

func newScoringContext(attempts []Attempt, catalog []CatalogQuestion, bp Blueprint, now time.Time) *scoringContext {
	idx := CatalogIndex(catalog)
	deduped := LatestAttempts(attempts)

	sc := &scoringContext{
		bp:             bp,
		now:            now,
		domainAccuracy: make(map[string]float64),
		domainSeen:     make(map[string]bool),
		alignment:      make(map[string]BlueprintCategory),
		lastAttempt:    make(map[uuid.UUID]Attempt, len(deduped)),
		typeShare:      make(map[string]float64),
	}

	attempted := make(map[string]int)
	correct := make(map[string]int)
	typeCounts := make(map[string]int)
	total := 0
	for _, a := range deduped {
		sc.lastAttempt[a.QuestionID] = a
		q, ok := idx[a.QuestionID]
		if !ok {
			continue
		}
		attempted[q.Category]++
		if a.IsCorrect {
			correct[q.Category]++
		}
		typeCounts[q.QuestionType]++
		total++
	}
	for domain, n := range attempted {
		sc.domainSeen[domain] = true
		sc.domainAccuracy[domain] = 100 * float64(correct[domain]) / float64(n)
	}
	sc.seenTypes = len(typeCounts)
	if total > 0 {
		for t, n := range typeCounts {
			sc.typeShare[t] = 100 * float64(n) / float64(total)
		}
	}

	for _, cat := range ComputeBlueprintAlignment(attempts, catalog, bp).Categories {
		sc.alignment[cat.Domain] = cat
	}
	return sc
}

type ruleResult struct {
	points   int
	reason   Reason
	priority int
	claimed  bool
}

// Each rule sees the score accumulated by the rules before it; the claim
// thresholds reference that running total so a big earlier contribution
// keeps a later rule from naming the reason.
type scoreRule func(sc *scoringContext, q CatalogQuestion, running int) ruleResult

var scoreRules = []scoreRule{
	weakAreaRule,
	blueprintGapRule,
	spacedRepetitionRule,
	itemTypeRule,
	lastOutcomeRule,
}

// weakAreaRule boosts questions from domains the user answers poorly.
func weakAreaRule(sc *scoringContext, q CatalogQuestion, running int) ruleResult {
	domain := domainOf(q)
	if !sc.domainSeen[domain] {
		return ruleResult{points: 5}
	}
	acc := sc.domainAccuracy[domain]
	switch {
	case acc < 70:
		return ruleResult{points: 40, reason: ReasonWeakArea, priority: priorityWeakArea, claimed: true}
	case acc < 75:
		return ruleResult{points: 20}
	case acc < 80:
		return ruleResult{points: 10}
	default:
		return ruleResult{}
	}
}

// blueprintGapRule pushes practice toward domains the exam weights say the
// user is neglecting, and away from over-practiced ones.
func blueprintGapRule(sc *scoringContext, q CatalogQuestion, running int) ruleResult {
	cat, ok := sc.alignment[domainOf(q)]
	if !ok {
		return ruleResult{}
	}
	switch cat.Status {
	case StatusUnderPracticed:
		if cat.Gap < -sc.bp.SevereGap {
			return ruleResult{
				points:   30,
				reason:   ReasonBlueprintGap,
				priority: priorityBlueprintGap,
				claimed:  running < 40,
			}
		}
		return ruleResult{points: 15}
	case StatusOverPracticed:
		return ruleResult{points: -10}
	default:
		return ruleResult{}
	}
}

// spacedRepetitionRule rewards questions not seen for a while and penalizes
// ones answered within the last day.
func spacedRepetitionRule(sc *scoringContext, q CatalogQuestion, running int) ruleResult {
	last, ok := sc.lastAttempt[q.ID]
	if !ok {
		return ruleResult{
			points:   5,
			reason:   ReasonNew,
			priority: priorityNew,
			claimed:  running < 30,
		}
	}
	days := sc.now.Sub(last.AttemptedAt).Hours() / 24
	switch {
	case days > 14:
		return ruleResult{
			points:   20,
			reason:   ReasonSpacedRepetition,
			priority: prioritySpacedRepetition,
			claimed:  running < 40,
		}
	case days > 7:
		return ruleResult{points: 15}
	case days > 3:
		return ruleResult{points: 10}
	case days > 1:
		return ruleResult{points: 5}
	default:
		return ruleResult{points: -5}
	}
}

// itemTypeRule nudges the mix of NGN item formats toward an even split
// across the formats the user has seen.
func itemTypeRule(sc *scoringContext, q CatalogQuestion, running int) ruleResult {
	if sc.seenTypes == 0 {
		return ruleResult{}
	}
	expected := 100 / float64(sc.seenTypes)
	actual := sc.typeShare[q.QuestionType]
	switch {
	case actual < expected-5:
		return ruleResult{
			points:   10,
			reason:   ReasonItemType,
			priority: priorityItemType,
			claimed:  running < 40,
		}
	case actual > expected+5:
		return ruleResult{points: -5}
	default:
		return ruleResult{}
	}
}

// lastOutcomeRule retries recent misses and demotes questions the user got
// right on the first try.
func lastOutcomeRule(sc *scoringContext, q CatalogQuestion, running int) ruleResult {
	last, ok := sc.lastAttempt[q.ID]
	if !ok {
		return ruleResult{}
	}
	if !last.IsCorrect {
		return ruleResult{points: 10}
	}
	if last.AttemptNumber == 1 {
		return ruleResult{points: -5}
	}
	return ruleResult{}
}

func scoreQuestion(sc *scoringContext, q CatalogQuestion) ScoredQuestion {
	score := 0
	reason := ReasonNew
	bestPriority := 0
	for _, rule := range scoreRules {
		res := rule(sc, q, score)
		score += res.points
		if res.claimed && res.priority > bestPriority {
			reason = res.reason
			bestPriority = res.priority
		}
	}
	return ScoredQuestion{
		QuestionID: q.ID,
		Domain:     domainOf(q),
		ItemType:   q.QuestionType,
		Score:      score,
		Reason:     reason,
	}
}

func scoreAll(attempts []Attempt, catalog []CatalogQuestion, bp Blueprint, now time.Time) []ScoredQuestion {
	sc := newScoringContext(attempts, catalog, bp, now)
	out := make([]ScoredQuestion, 0, len(catalog))
	for _, q := range catalog {
		out = append(out, scoreQuestion(sc, q))
	}
	return out
}

func domainOf(q CatalogQuestion) string {
	if q.Category == "" {
		return DefaultDomain
	}
	return q.Category
}
