package rules

import (
	"fmt"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// InteractiveRoleRule flags generic containers used as interactive
// elements. The right remedy is usually a real <button>, which no
// automatic rewrite can choose safely, so violations carry no fix.
type InteractiveRoleRule struct{}

func (r *InteractiveRoleRule) ID() string            { return IDInteractiveRole }
func (r *InteractiveRoleRule) Type() domain.RuleType { return domain.RuleTypeDetect }

func (r *InteractiveRoleRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if el.Tag != "div" && el.Tag != "span" {
			continue
		}
		if !el.HasAttr("onClick") {
			continue
		}
		missing := ""
		switch {
		case !el.HasAttr("role") && !hasTabIndex(el):
			missing = "role and tabIndex"
		case !el.HasAttr("role"):
			missing = "role"
		case !hasTabIndex(el):
			missing = "tabIndex"
		default:
			continue
		}
		out = append(out, newViolation(IDInteractiveRole, el,
			fmt.Sprintf("clickable <%s> is missing %s; consider a <button>", el.Tag, missing),
			nil))
	}
	return out
}

func hasTabIndex(el *parser.Element) bool {
	return el.HasAttr("tabIndex") || el.HasAttr("tabindex")
}
