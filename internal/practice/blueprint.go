package practice

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDomain is used when a catalog item carries no category.
const DefaultDomain = "Other"

type DomainWeight struct {
	Domain string  `yaml:"domain"`
	Weight float64 `yaml:"weight"`
}

// Blueprint carries every tunable the calculators depend on. It is injected
// rather than read from package-level constants so tests (and future exam
// plans) can run against alternate tables.
type Blueprint struct {
	Weights []DomainWeight `yaml:"weights"`

	MinAttemptsForLevel int     `yaml:"min_attempts_for_level"`
	DevelopingThreshold float64 `yaml:"developing_threshold"`
	ProficientThreshold float64 `yaml:"proficient_threshold"`
	MasteryThreshold    float64 `yaml:"mastery_threshold"`

	AlignmentBand float64 `yaml:"alignment_band"`
	SevereGap     float64 `yaml:"severe_gap"`

	EfficiencyMinSample int `yaml:"efficiency_min_sample"`

	DomainShareCap     float64 `yaml:"domain_share_cap"`
	TypeShareCap       float64 `yaml:"type_share_cap"`
	MinDistinctDomains int     `yaml:"min_distinct_domains"`

	MinutesPerQuestion float64 `yaml:"minutes_per_question"`
	TTLHours           int     `yaml:"ttl_hours"`
}

// DefaultBlueprint is the current NCLEX test plan: nine domains whose
// weights sum to 100.
func DefaultBlueprint() Blueprint {
	return Blueprint{
		Weights: []DomainWeight{
			{Domain: "Management of Care", Weight: 17},
			{Domain: "Safety and Infection Control", Weight: 9},
			{Domain: "Health Promotion and Maintenance", Weight: 6},
			{Domain: "Psychosocial Integrity", Weight: 6},
			{Domain: "Basic Care and Comfort", Weight: 6},
			{Domain: "Pharmacological Therapies", Weight: 12},
			{Domain: "Reduction of Risk Potential", Weight: 9},
			{Domain: "Physiological Adaptation", Weight: 11},
			{Domain: "Other", Weight: 24},
		},
		MinAttemptsForLevel: 10,
		DevelopingThreshold: 60,
		ProficientThreshold: 75,
		MasteryThreshold:    90,
		AlignmentBand:       3,
		SevereGap:           5,
		EfficiencyMinSample: 5,
		DomainShareCap:      0.4,
		TypeShareCap:        0.3,
		MinDistinctDomains:  3,
		MinutesPerQuestion:  1.5,
		TTLHours:            24,
	}
}

// LoadBlueprint reads a YAML override on top of the defaults. An empty path
// returns the defaults untouched.
func LoadBlueprint(path string) (Blueprint, error) {
	bp := DefaultBlueprint()
	if path == "" {
		return bp, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return bp, fmt.Errorf("read blueprint config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &bp); err != nil {
		return bp, fmt.Errorf("parse blueprint config: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return bp, err
	}
	return bp, nil
}

func (bp Blueprint) Validate() error {
	if len(bp.Weights) == 0 {
		return fmt.Errorf("blueprint has no domain weights")
	}
	var sum float64
	for _, w := range bp.Weights {
		if w.Domain == "" {
			return fmt.Errorf("blueprint weight with empty domain")
		}
		if w.Weight < 0 {
			return fmt.Errorf("blueprint weight for %q is negative", w.Domain)
		}
		sum += w.Weight
	}
	if sum < 99.5 || sum > 100.5 {
		return fmt.Errorf("blueprint weights sum to %.1f, want 100", sum)
	}
	return nil
}

func (bp Blueprint) TTL() time.Duration {
	return time.Duration(bp.TTLHours) * time.Hour
}
