package rules

import (
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// LinkNoopenerRule normalizes rel on target="_blank" links so the opened
// page cannot reach back through window.opener.
type LinkNoopenerRule struct{}

func (r *LinkNoopenerRule) ID() string            { return IDLinkNoopener }
func (r *LinkNoopenerRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *LinkNoopenerRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if el.Tag != "a" {
			continue
		}
		target := el.Attr("target")
		if target == nil || target.IsExpr || target.Value != "_blank" {
			continue
		}

		rel := el.Attr("rel")
		if rel != nil && rel.IsExpr {
			// A computed rel cannot be normalized safely.
			continue
		}

		existing := ""
		if rel != nil {
			existing = rel.Value
		}
		merged, changed := mergeRel(existing)
		if !changed {
			continue
		}

		fix := &domain.Fix{
			Attribute: "rel",
			Value:     domain.LiteralValue(merged),
			Target:    &ElementTarget{Element: el},
		}
		if rel == nil {
			fix.Type = domain.FixInsertAttr
		} else {
			fix.Type = domain.FixReplaceAttr
			fix.Target = &ElementTarget{Element: el, Attr: rel}
		}

		out = append(out, newViolation(IDLinkNoopener, el,
			`target="_blank" link needs rel="noopener noreferrer"`, fix))
	}
	return out
}

// mergeRel appends the missing security tokens while preserving whatever
// the author already listed.
func mergeRel(existing string) (string, bool) {
	tokens := strings.Fields(existing)
	seen := map[string]bool{}
	for _, t := range tokens {
		seen[t] = true
	}
	changed := false
	for _, required := range []string{"noopener", "noreferrer"} {
		if !seen[required] {
			tokens = append(tokens, required)
			changed = true
		}
	}
	return strings.Join(tokens, " "), changed
}
