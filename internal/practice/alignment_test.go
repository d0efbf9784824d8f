package practice

import (
	"math"
	"testing"
	"time"
)

func TestAlignmentZeroHistory(t *testing.T) {
	bp := DefaultBlueprint()
	out := ComputeBlueprintAlignment(nil, nil, bp)

	if len(out.Categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(out.Categories))
	}
	var expectedScore float64
	for _, cat := range out.Categories {
		if cat.YourPractice != 0 {
			t.Fatalf("%s: expected 0%% practice, got %v", cat.Domain, cat.YourPractice)
		}
		if cat.Gap != -cat.NCLEXWeight {
			t.Fatalf("%s: expected gap %v, got %v", cat.Domain, -cat.NCLEXWeight, cat.Gap)
		}
		if cat.NCLEXWeight > 3 && cat.Status != StatusUnderPracticed {
			t.Fatalf("%s: expected under_practiced, got %s", cat.Domain, cat.Status)
		}
		expectedScore += 100 - cat.NCLEXWeight
	}
	want := int(math.Round(expectedScore / 9))
	if out.AlignmentScore != want {
		t.Fatalf("expected alignment score %d, got %d", want, out.AlignmentScore)
	}
}

func TestAlignmentPracticeSharesSumTo100(t *testing.T) {
	bp := DefaultBlueprint()
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	a1, c1 := makeHistory("Management of Care", 7, 5, start)
	a2, c2 := makeHistory("Pharmacological Therapies", 13, 9, start.Add(time.Hour))
	a3, c3 := makeHistory("Other", 4, 2, start.Add(2*time.Hour))
	attempts := append(append(a1, a2...), a3...)
	catalog := append(append(c1, c2...), c3...)

	out := ComputeBlueprintAlignment(attempts, catalog, bp)
	var sum float64
	for _, cat := range out.Categories {
		sum += cat.YourPractice
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("practice shares should sum to 100, got %v", sum)
	}
	if out.AlignmentScore < 0 || out.AlignmentScore > 100 {
		t.Fatalf("alignment score out of range: %d", out.AlignmentScore)
	}
}

func TestAlignmentBandIsInclusive(t *testing.T) {
	bp := DefaultBlueprint()
	// 3 of 20 attempts in Pharmacological Therapies is 15%, a gap of
	// exactly +3 against its weight of 12.
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	a1, c1 := makeHistory("Pharmacological Therapies", 3, 2, start)
	a2, c2 := makeHistory("Other", 17, 10, start.Add(time.Hour))
	attempts := append(a1, a2...)
	catalog := append(c1, c2...)

	out := ComputeBlueprintAlignment(attempts, catalog, bp)
	for _, cat := range out.Categories {
		if cat.Domain != "Pharmacological Therapies" {
			continue
		}
		if cat.Gap != 3 {
			t.Fatalf("expected gap of exactly 3, got %v", cat.Gap)
		}
		if cat.Status != StatusAligned {
			t.Fatalf("gap of exactly +3 should be aligned, got %s", cat.Status)
		}
	}
}
