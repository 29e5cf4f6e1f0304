package rules

import (
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// NextLinkRule detects the legacy pattern of a Next.js <Link> wrapping a
// manual <a>. Modern Link renders its own anchor, so the nested one
// produces invalid, doubly-focusable markup. The fix hoists the anchor's
// attributes (except href) onto the Link and replaces the anchor with
// its children.
type NextLinkRule struct{}

func (r *NextLinkRule) ID() string            { return IDNextLinkNestedA }
func (r *NextLinkRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *NextLinkRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if !parser.IsPascalCase(el.Tag) || file.ImportSourceOf(el.Tag) != "next/link" {
			continue
		}
		anchor := el.FindChild(func(child *parser.Element) bool {
			return child.Tag == "a"
		})
		if anchor == nil {
			continue
		}
		out = append(out, newViolation(IDNextLinkNestedA, el,
			"<"+el.Tag+"> renders a nested <a>; Link provides its own anchor",
			&domain.Fix{
				Type:   domain.FixRemoveElement,
				Value:  domain.LiteralValue(""),
				Target: &LinkTarget{Wrapper: el, Anchor: anchor},
			}))
	}
	return out
}
