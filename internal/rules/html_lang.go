package rules

import (
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// HTMLLangRule inserts the document language on <html>. Screen readers
// pick pronunciation rules from it, which is why this carries the
// highest severity weight.
type HTMLLangRule struct {
	// Locale is the configured target locale; its language part becomes
	// the inserted default.
	Locale string
}

func (r *HTMLLangRule) ID() string            { return IDHTMLLang }
func (r *HTMLLangRule) Type() domain.RuleType { return domain.RuleTypeDeterministic }

func (r *HTMLLangRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	var out []domain.Violation
	for _, el := range file.Elements {
		if el.Tag != "html" {
			continue
		}
		lang := el.Attr("lang")
		if lang != nil && (lang.IsExpr || strings.TrimSpace(lang.Value) != "") {
			continue
		}

		fix := &domain.Fix{
			Attribute: "lang",
			Value:     domain.LiteralValue(languageOf(r.Locale)),
			Target:    &ElementTarget{Element: el},
		}
		if lang == nil {
			fix.Type = domain.FixInsertAttr
		} else {
			fix.Type = domain.FixReplaceAttr
			fix.Target = &ElementTarget{Element: el, Attr: lang}
		}

		out = append(out, newViolation(IDHTMLLang, el,
			"<html> element does not declare a document language", fix))
	}
	return out
}

// languageOf extracts the language subtag: "en-US" -> "en"
func languageOf(locale string) string {
	if locale == "" {
		return "en"
	}
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return strings.ToLower(locale[:i])
	}
	return strings.ToLower(locale)
}
