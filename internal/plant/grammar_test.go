package plant

import (
	"strings"
	"testing"
)

func TestGenerateNoRulesIsIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		got, err := Generate("F+[X]-", nil, n)
		if err != nil {
			t.Fatalf("unexpected error at %d iterations: %v", n, err)
		}
		if got != "F+[X]-" {
			t.Fatalf("expected identity with no rules, got %q at %d iterations", got, n)
		}
	}
}

func TestGenerateSingleReplacement(t *testing.T) {
	got, err := Generate("X", map[rune]string{'X': "F"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "F" {
		t.Fatalf("expected F, got %q", got)
	}
}

func TestGenerateNestedExpansion(t *testing.T) {
	got, err := Generate("X", map[rune]string{'X': "F[X]"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "F[F[X]]" {
		t.Fatalf("expected F[F[X]], got %q", got)
	}
}

func TestGenerateLiteralsPassThrough(t *testing.T) {
	got, err := Generate("A-B", map[rune]string{'A': "AB"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABB-B" {
		t.Fatalf("expected ABB-B, got %q", got)
	}
}

func TestGenerateDoublingRuleLength(t *testing.T) {
	// X -> FX doubles usable glyphs each round; assert the closed form.
	got, err := Generate("X", map[rune]string{'X': "FX", 'F': "FF"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(got, "F"); n != 7 {
		t.Fatalf("expected 7 F glyphs after 3 iterations, got %d in %q", n, got)
	}
}

func TestGenerateRejectsNegativeIterations(t *testing.T) {
	if _, err := Generate("X", nil, -1); err == nil {
		t.Fatalf("expected error for negative iterations")
	}
}

func TestGenerateBoundsBlowUp(t *testing.T) {
	_, err := Generate("F", map[rune]string{'F': "FF"}, 40)
	if err == nil {
		t.Fatalf("expected expansion bound error for exponential rule")
	}
}
