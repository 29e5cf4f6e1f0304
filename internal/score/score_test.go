package score

import (
	"testing"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

func violationsOf(ids ...string) []domain.Violation {
	out := make([]domain.Violation, len(ids))
	for i, id := range ids {
		out[i] = domain.Violation{Rule: id}
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		violations []domain.Violation
		want       int
	}{
		{"clean", nil, 100},
		{"one missing lang", violationsOf(rules.IDHTMLLang), 95},
		{"one img alt", violationsOf(rules.IDImgAlt), 97},
		{"mixed", violationsOf(rules.IDImgAlt, rules.IDButtonLabel, rules.IDLinkNoopener), 94},
		{"every occurrence counts", violationsOf(rules.IDImgAlt, rules.IDImgAlt, rules.IDImgAlt), 91},
		{"unknown rule costs one", violationsOf("future-rule"), 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.violations); got != tt.want {
				t.Errorf("Compute = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeClampsAtZero(t *testing.T) {
	var violations []domain.Violation
	for i := 0; i < 50; i++ {
		violations = append(violations, domain.Violation{Rule: rules.IDHTMLLang})
	}
	if got := Compute(violations); got != 0 {
		t.Errorf("Compute = %d, want 0", got)
	}
}

func TestComputeRoundsFractionalWeights(t *testing.T) {
	// link-noopener weighs 0.5, so 99.5 rounds up
	if got := Compute(violationsOf(rules.IDLinkNoopener)); got != 100 {
		t.Errorf("one half-point violation = %d, want 100", got)
	}
	if got := Compute(violationsOf(rules.IDLinkNoopener, rules.IDLinkNoopener)); got != 99 {
		t.Errorf("two half-point violations = %d, want 99", got)
	}
}
