package practice

import (
	"time"

	"github.com/google/uuid"
)

type MasteryLevel string

const (
	MasteryInsufficientData MasteryLevel = "insufficient_data"
	MasteryNovice           MasteryLevel = "novice"
	MasteryDeveloping       MasteryLevel = "developing"
	MasteryProficient       MasteryLevel = "proficient"
	MasteryMastery          MasteryLevel = "mastery"
)

type AlignmentStatus string

const (
	StatusAligned        AlignmentStatus = "aligned"
	StatusOverPracticed  AlignmentStatus = "over_practiced"
	StatusUnderPracticed AlignmentStatus = "under_practiced"
)

type Quadrant string

const (
	QuadrantFastAccurate   Quadrant = "fast_accurate"
	QuadrantSlowAccurate   Quadrant = "slow_accurate"
	QuadrantFastInaccurate Quadrant = "fast_inaccurate"
	QuadrantSlowInaccurate Quadrant = "slow_inaccurate"
)

type SpeedIssue string

const (
	SpeedTooFast SpeedIssue = "too_fast"
	SpeedTooSlow SpeedIssue = "too_slow"
	SpeedOptimal SpeedIssue = "optimal"
)

type Reason string

const (
	ReasonWeakArea         Reason = "weak_area"
	ReasonBlueprintGap     Reason = "blueprint_gap"
	ReasonSpacedRepetition Reason = "spaced_repetition"
	ReasonItemType         Reason = "item_type"
	ReasonNew              Reason = "new"
)

// Attempt is one answer submission as the core sees it. The service layer
// maps the persisted rows down to this before calling in.
type Attempt struct {
	QuestionID       uuid.UUID
	AttemptedAt      time.Time
	IsCorrect        bool
	TimeSpentSeconds int
	AttemptNumber    int
}

// CatalogQuestion is a published item as the core sees it.
type CatalogQuestion struct {
	ID           uuid.UUID
	Category     string
	QuestionType string
	Difficulty   string
}

type DomainMastery struct {
	Domain               string       `json:"domain"`
	Accuracy             float64      `json:"accuracy"`
	Attempted            int          `json:"attempted"`
	Correct              int          `json:"correct"`
	MasteryLevel         MasteryLevel `json:"mastery_level"`
	QuestionsToNextLevel int          `json:"questions_to_next_level"`
}

type BlueprintCategory struct {
	Domain       string          `json:"domain"`
	NCLEXWeight  float64         `json:"nclex_weight"`
	YourPractice float64         `json:"your_practice"`
	Gap          float64         `json:"gap"`
	Status       AlignmentStatus `json:"status"`
}

type BlueprintAlignment struct {
	Categories               []BlueprintCategory `json:"categories"`
	AlignmentScore           int                 `json:"alignment_score"`
	UnderPracticedCategories []string            `json:"under_practiced_categories"`
}

type TimeEfficiencyPoint struct {
	Domain      string   `json:"domain"`
	AverageTime float64  `json:"average_time"`
	Accuracy    float64  `json:"accuracy"`
	Attempted   int      `json:"attempted"`
	Quadrant    Quadrant `json:"quadrant"`
}

type TimeEfficiency struct {
	Points     []TimeEfficiencyPoint `json:"points"`
	Index      float64               `json:"index"`
	SpeedIssue *SpeedIssue           `json:"speed_issue"`
}

type ScoredQuestion struct {
	QuestionID uuid.UUID `json:"question_id"`
	Domain     string    `json:"domain"`
	ItemType   string    `json:"item_type"`
	Score      int       `json:"score"`
	Reason     Reason    `json:"reason"`
}

type RecommendedQuestion struct {
	QuestionID    uuid.UUID `json:"question_id"`
	PriorityScore int       `json:"priority_score"`
	Reason        Reason    `json:"reason"`
	Domain        string    `json:"domain"`
	ItemType      string    `json:"item_type"`
}

type RecommendedPractice struct {
	UserID           uuid.UUID             `json:"user_id"`
	Questions        []RecommendedQuestion `json:"questions"`
	WeakAreas        []string              `json:"weak_areas"`
	BlueprintGaps    []string              `json:"blueprint_gaps"`
	ReviewCount      int                   `json:"review_count"`
	NewCount         int                   `json:"new_count"`
	EstimatedMinutes int                   `json:"estimated_minutes"`
	GeneratedAt      time.Time             `json:"generated_at"`
	ExpiresAt        time.Time             `json:"expires_at"`
}
