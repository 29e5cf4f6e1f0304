package rules

import (
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// ButtonTypeRule inserts an explicit type="button" on buttons that would
// otherwise default to submit and trigger surprise form submissions.
type ButtonTypeRule struct{}

func (r *ButtonTypeRule) ID() string            { return IDButtonType }
func (r *ButtonTypeRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *ButtonTypeRule) Scan(file *parser.File, opts domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if !r.applies(el, opts) {
			continue
		}
		if el.HasAttr("type") {
			continue
		}
		out = append(out, newViolation(IDButtonType, el,
			"<"+el.Tag+"> has no explicit type and defaults to submit",
			&domain.Fix{
				Type:      domain.FixInsertAttr,
				Attribute: "type",
				Value:     domain.LiteralValue("button"),
				Target:    &ElementTarget{Element: el},
			}))
	}
	return out
}

func (r *ButtonTypeRule) applies(el *parser.Element, opts domain.RuleOptions) bool {
	if el.Tag == "button" {
		return true
	}
	// Custom design-system buttons usually forward their props onto a
	// real <button>, so the inserted type still lands where it matters.
	return opts.ScanCustomComponents && parser.IsPascalCase(el.Tag) && strings.HasSuffix(el.Tag, "Button")
}
