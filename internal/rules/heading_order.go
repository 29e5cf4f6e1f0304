package rules

import (
	"fmt"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// HeadingOrderRule flags skipped heading levels. Only downward jumps of
// more than one level violate; returning to an equal or higher heading
// never does, so repeated h1>h2>h1>h2 sectioning stays clean.
type HeadingOrderRule struct{}

func (r *HeadingOrderRule) ID() string            { return IDHeadingOrder }
func (r *HeadingOrderRule) Type() domain.RuleType { return domain.RuleTypeDetect }

func (r *HeadingOrderRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	headings := file.Headings()
	var out []domain.Violation

	for i := 1; i < len(headings); i++ {
		prev := parser.HeadingLevel(headings[i-1].Tag)
		cur := parser.HeadingLevel(headings[i].Tag)
		if cur > prev+1 {
			out = append(out, newViolation(IDHeadingOrder, headings[i],
				fmt.Sprintf("expected h%d but found h%d", prev+1, cur),
				nil))
		}
	}
	return out
}
