package rules

import (
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// NextImageSizesRule detects fill-mode Next.js images without a sizes
// attribute. Without sizes the browser downloads the largest candidate;
// the right value depends on layout, so this is detect-only.
type NextImageSizesRule struct{}

func (r *NextImageSizesRule) ID() string            { return IDNextImageSizes }
func (r *NextImageSizesRule) Type() domain.RuleType { return domain.RuleTypeDetect }

func (r *NextImageSizesRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if !parser.IsPascalCase(el.Tag) || file.ImportSourceOf(el.Tag) != "next/image" {
			continue
		}
		fill := el.Attr("fill")
		if fill == nil {
			continue
		}
		if fill.HasValue && !isTruthyAttr(fill) {
			continue
		}
		if el.HasAttr("sizes") {
			continue
		}
		out = append(out, newViolation(IDNextImageSizes, el,
			"<"+el.Tag+" fill> without sizes downloads the largest source candidate",
			nil))
	}
	return out
}

// isTruthyAttr treats bare attributes and literal {true} as enabled
func isTruthyAttr(attr *parser.Attribute) bool {
	if !attr.HasValue {
		return true
	}
	if attr.IsExpr {
		return attr.Expr == "true"
	}
	return attr.Value != "false"
}
