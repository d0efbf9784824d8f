package practice

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBlueprintValidates(t *testing.T) {
	bp := DefaultBlueprint()
	if err := bp.Validate(); err != nil {
		t.Fatalf("default blueprint should validate: %v", err)
	}
	var sum float64
	for _, w := range bp.Weights {
		sum += w.Weight
	}
	if sum != 100 {
		t.Fatalf("default weights should sum to 100, got %v", sum)
	}
	if len(bp.Weights) != 9 {
		t.Fatalf("expected 9 domains, got %d", len(bp.Weights))
	}
}

func TestLoadBlueprintEmptyPathUsesDefaults(t *testing.T) {
	bp, err := LoadBlueprint("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.AlignmentBand != 3 {
		t.Fatalf("expected default alignment band, got %v", bp.AlignmentBand)
	}
}

func TestLoadBlueprintOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.yaml")
	if err := os.WriteFile(path, []byte("alignment_band: 5\nttl_hours: 12\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	bp, err := LoadBlueprint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.AlignmentBand != 5 {
		t.Fatalf("expected overridden alignment band 5, got %v", bp.AlignmentBand)
	}
	if bp.TTLHours != 12 {
		t.Fatalf("expected overridden ttl 12, got %d", bp.TTLHours)
	}
	// Untouched fields keep their defaults.
	if len(bp.Weights) != 9 {
		t.Fatalf("weights should keep defaults, got %d entries", len(bp.Weights))
	}
}

func TestValidateRejectsBrokenWeights(t *testing.T) {
	bp := DefaultBlueprint()
	bp.Weights[0].Weight = 40 // pushes the sum past 100
	if err := bp.Validate(); err == nil {
		t.Fatalf("expected validation failure for weights not summing to 100")
	}
}
