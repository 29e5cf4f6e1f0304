package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// TabIndexRule clamps literal positive tabIndex values to 0. Positive
// values hijack the natural tab order; symbolic or computed values are
// left untouched because their intent cannot be inferred.
type TabIndexRule struct{}

func (r *TabIndexRule) ID() string            { return IDTabIndex }
func (r *TabIndexRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *TabIndexRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		attr := el.Attr("tabIndex")
		if attr == nil {
			attr = el.Attr("tabindex")
		}
		if attr == nil || !attr.HasValue {
			continue
		}

		raw := attr.Value
		if attr.IsExpr {
			raw = attr.Expr
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || value <= 0 {
			continue
		}

		out = append(out, newViolation(IDTabIndex, el,
			fmt.Sprintf("positive tabIndex %d overrides the natural tab order", value),
			&domain.Fix{
				Type:      domain.FixReplaceAttr,
				Attribute: attr.Name,
				Value:     domain.LiteralValue("{0}"),
				Target:    &ElementTarget{Element: el, Attr: attr},
			}))
	}
	return out
}
