// Package score turns a violation list into a 0-100 accessibility score
package score

import (
	"math"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

// Compute subtracts each violation's rule weight from 100 and clamps to
// the 0-100 range. Every occurrence counts: ten missing alts cost ten
// times one missing alt.
func Compute(violations []domain.Violation) int {
	total := 100.0
	for i := range violations {
		total -= rules.Weight(violations[i].Rule)
	}
	s := int(math.Round(total))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
