package rules

import (
	"fmt"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// genericLabelWords are literal aria-label values that fail to
// distinguish one control from another.
var genericLabelWords = map[string]bool{
	"button":     true,
	"icon":       true,
	"link":       true,
	"item":       true,
	"element":    true,
	"action":     true,
	"click":      true,
	"click here": true,
}

// hasAccessibleName reports whether the element already carries an
// explicit accessible name.
func hasAccessibleName(el *parser.Element) bool {
	for _, name := range []string{"aria-label", "aria-labelledby"} {
		if attr := el.Attr(name); attr != nil {
			if attr.IsExpr || strings.TrimSpace(attr.Value) != "" {
				return true
			}
		}
	}
	return false
}

// hasAccessibleChild reports whether any descendant supplies a name, for
// example an <img alt="..."> inside a link.
func hasAccessibleChild(el *parser.Element) bool {
	return el.FindChild(func(child *parser.Element) bool {
		for _, name := range []string{"aria-label", "alt"} {
			if attr := child.Attr(name); attr != nil && (attr.IsExpr || strings.TrimSpace(attr.Value) != "") {
				return true
			}
		}
		return false
	}) != nil
}

// iconOnly reports whether the element renders an icon with no other
// naming content. Elements carrying real text are never icon-only: the
// text already provides the accessible name.
func iconOnly(el *parser.Element) bool {
	if hasAccessibleName(el) || el.HasTextContent() || el.HasExprContent() || hasAccessibleChild(el) {
		return false
	}
	return iconChild(el) != nil
}

// scanGenericLabel emits the deterministic sub-violation rewriting a
// generic literal aria-label into a loop-variable interpolation. Only
// fires inside iteration callbacks where a distinguishing property is
// rendered; a generic label outside a loop is left untouched.
func scanGenericLabel(ruleID string, el *parser.Element) *domain.Violation {
	attr := el.Attr("aria-label")
	if attr == nil || attr.IsExpr {
		return nil
	}
	literal := strings.TrimSpace(attr.Value)
	if literal == "" || !genericLabelWords[strings.ToLower(literal)] {
		return nil
	}
	access, ok := LoopAccess(el)
	if !ok {
		return nil
	}
	v := newViolation(ruleID, el,
		fmt.Sprintf("every list item shares the generic label %q", literal),
		&domain.Fix{
			Type:      domain.FixReplaceAttr,
			Attribute: "aria-label",
			Value:     domain.LiteralValue(LoopLabelExpr(literal, access)),
			Target:    &ElementTarget{Element: el, Attr: attr},
		})
	return &v
}

// ButtonLabelRule flags icon-only buttons without an accessible name
type ButtonLabelRule struct{}

func (r *ButtonLabelRule) ID() string            { return IDButtonLabel }
func (r *ButtonLabelRule) Type() domain.RuleType { return domain.RuleTypeAI }

func (r *ButtonLabelRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if el.Tag != "button" {
			continue
		}
		if v := scanGenericLabel(IDButtonLabel, el); v != nil {
			out = append(out, *v)
			continue
		}
		if iconOnly(el) {
			out = append(out, newViolation(IDButtonLabel, el,
				"icon-only <button> has no accessible name",
				&domain.Fix{
					Type:      domain.FixInsertAttr,
					Attribute: "aria-label",
					Value:     domain.DeferredValue(ResolverIconLabel),
					Target:    &ElementTarget{Element: el},
				}))
		}
	}
	return out
}

// LinkLabelRule flags icon-only anchors and Next.js Link components
type LinkLabelRule struct{}

func (r *LinkLabelRule) ID() string            { return IDLinkLabel }
func (r *LinkLabelRule) Type() domain.RuleType { return domain.RuleTypeAI }

func (r *LinkLabelRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if !isLinkElement(file, el) {
			continue
		}
		if v := scanGenericLabel(IDLinkLabel, el); v != nil {
			out = append(out, *v)
			continue
		}
		if iconOnly(el) {
			out = append(out, newViolation(IDLinkLabel, el,
				fmt.Sprintf("icon-only <%s> has no accessible name", el.Tag),
				&domain.Fix{
					Type:      domain.FixInsertAttr,
					Attribute: "aria-label",
					Value:     domain.DeferredValue(ResolverIconLabel),
					Target:    &ElementTarget{Element: el},
				}))
		}
	}
	return out
}

// isLinkElement matches intrinsic anchors and the Next.js link component
func isLinkElement(file *parser.File, el *parser.Element) bool {
	if el.Tag == "a" {
		return true
	}
	return parser.IsPascalCase(el.Tag) && file.ImportSourceOf(el.Tag) == "next/link"
}

// inputButtonTypes are the input kinds rendered as controls whose only
// face is their value or image.
var inputButtonTypes = map[string]bool{
	"button": true,
	"submit": true,
	"reset":  true,
	"image":  true,
}

// InputLabelRule flags button-like inputs that render without any
// accessible name.
type InputLabelRule struct{}

func (r *InputLabelRule) ID() string            { return IDInputLabel }
func (r *InputLabelRule) Type() domain.RuleType { return domain.RuleTypeAI }

func (r *InputLabelRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if el.Tag != "input" {
			continue
		}
		typeAttr := el.Attr("type")
		if typeAttr == nil || typeAttr.IsExpr || !inputButtonTypes[typeAttr.Value] {
			continue
		}
		if hasAccessibleName(el) {
			continue
		}
		if named := el.Attr("value"); named != nil && (named.IsExpr || strings.TrimSpace(named.Value) != "") {
			continue
		}
		if typeAttr.Value == "image" {
			if alt := el.Attr("alt"); alt != nil && (alt.IsExpr || strings.TrimSpace(alt.Value) != "") {
				continue
			}
		}
		if title := el.Attr("title"); title != nil && (title.IsExpr || strings.TrimSpace(title.Value) != "") {
			continue
		}
		out = append(out, newViolation(IDInputLabel, el,
			fmt.Sprintf("<input type=%q> has no accessible name", typeAttr.Value),
			&domain.Fix{
				Type:      domain.FixInsertAttr,
				Attribute: "aria-label",
				Value:     domain.DeferredValue(ResolverInputLabel),
				Target:    &ElementTarget{Element: el},
			}))
	}
	return out
}
