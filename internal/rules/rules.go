// Package rules implements the accessibility rule set. Every rule is a
// pure scan over a parsed file: no side effects, idempotent for an
// unchanged file, and safe to run in any order.
package rules

import (
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// Rule is the contract every detector implements
type Rule interface {
	ID() string
	Type() domain.RuleType
	Scan(file *parser.File, opts domain.RuleOptions) []domain.Violation
}

// ElementTarget is the structural handle carried from scan time to fix
// time for attribute-level fixes. Attr is nil for insertions.
type ElementTarget struct {
	Element *parser.Element
	Attr    *parser.Attribute
}

// SpanTarget addresses a byte range inside a file, used by fixes that
// rewrite part of a text node.
type SpanTarget struct {
	File  *parser.File
	Start int
	End   int
}

// LinkTarget carries the wrapper element and its nested anchor for the
// hoist-and-remove fix.
type LinkTarget struct {
	Wrapper *parser.Element
	Anchor  *parser.Element
}

// MetadataTarget addresses the exported metadata object of a page file.
// Export is nil when the file has none yet.
type MetadataTarget struct {
	File   *parser.File
	Export *parser.Export
}

// weights assign a severity cost per rule, from cosmetic (0.5) to
// critical (5.0). The scoring engine subtracts these from 100.
var weights = map[string]float64{
	IDImgAlt:          3.0,
	IDButtonLabel:     2.5,
	IDLinkLabel:       2.5,
	IDInputLabel:      2.0,
	IDPageTitle:       4.0,
	IDHTMLLang:        5.0,
	IDButtonType:      1.0,
	IDLinkNoopener:    0.5,
	IDTabIndex:        1.5,
	IDEmojiLabel:      1.0,
	IDHeadingOrder:    2.0,
	IDInteractiveRole: 2.5,
	IDNextLinkNestedA: 2.0,
	IDNextImageSizes:  1.5,
}

// Rule identifiers
const (
	IDImgAlt          = "img-alt"
	IDButtonLabel     = "button-label"
	IDLinkLabel       = "link-label"
	IDInputLabel      = "input-label"
	IDPageTitle       = "page-title"
	IDHTMLLang        = "html-lang"
	IDButtonType      = "button-type"
	IDLinkNoopener    = "link-noopener"
	IDTabIndex        = "tab-index"
	IDEmojiLabel      = "emoji-label"
	IDHeadingOrder    = "heading-order"
	IDInteractiveRole = "interactive-role"
	IDNextLinkNestedA = "next-link-no-nested-a"
	IDNextImageSizes  = "next-image-sizes"
)

// Weight returns the severity weight for a rule id, 1.0 for unknown ids
func Weight(ruleID string) float64 {
	if w, ok := weights[ruleID]; ok {
		return w
	}
	return 1.0
}

// All returns the full rule set in a stable order. Locale is used by
// rules that synthesize locale-dependent defaults (html-lang).
func All(locale string) []Rule {
	return []Rule{
		&ImgAltRule{},
		&ButtonLabelRule{},
		&LinkLabelRule{},
		&InputLabelRule{},
		&PageTitleRule{},
		&HTMLLangRule{Locale: locale},
		&ButtonTypeRule{},
		&LinkNoopenerRule{},
		&TabIndexRule{},
		&EmojiLabelRule{},
		&HeadingOrderRule{},
		&InteractiveRoleRule{},
		&NextLinkRule{},
		&NextImageSizesRule{},
	}
}

// IDs returns the identifiers of the full rule set
func IDs() []string {
	var ids []string
	for _, r := range All("en") {
		ids = append(ids, r.ID())
	}
	return ids
}

func newViolation(ruleID string, el *parser.Element, message string, fix *domain.Fix) domain.Violation {
	return domain.Violation{
		Rule:    ruleID,
		File:    el.File.Path,
		Line:    el.Line,
		Column:  el.Column,
		Element: el.Snippet(),
		Message: message,
		Fix:     fix,
	}
}
