package rules

import (
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// labelProps is the fixed preference order for picking the loop-variable
// property that distinguishes one list item's label from another.
var labelProps = []string{"label", "name", "title", "heading", "text", "id", "placeholder"}

// LoopAccess returns the property access (e.g. "item.label") that should
// be interpolated into a label for an element rendered inside a loop
// callback. The access is only returned when the exact text also appears
// in the element's rendered children, so the label stays consistent with
// what the user sees.
func LoopAccess(el *parser.Element) (string, bool) {
	if el.LoopVar == "" || !el.InLoopCallback() {
		return "", false
	}
	inner := el.InnerSource()
	if inner == "" {
		return "", false
	}
	for _, prop := range labelProps {
		access := el.LoopVar + "." + prop
		if containsAccess(inner, access) {
			return access, true
		}
	}
	return "", false
}

// LoopLabelExpr builds the JSX expression interpolating a loop-variable
// access into a base label: ("Edit", "item.name") -> {`Edit ${item.name}`}.
func LoopLabelExpr(base, access string) string {
	return "{`" + base + " ${" + access + "}`}"
}

// containsAccess matches the access text while rejecting longer property
// chains (item.label does not match item.labelledBy).
func containsAccess(source, access string) bool {
	idx := 0
	for {
		i := strings.Index(source[idx:], access)
		if i < 0 {
			return false
		}
		pos := idx + i
		end := pos + len(access)
		if end >= len(source) || !isIdentChar(source[end]) {
			if pos == 0 || !isIdentChar(source[pos-1]) {
				return true
			}
		}
		idx = pos + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
