package rules

import (
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/pagectx"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// PageTitleRule checks route page files for a document title: an
// exported metadata object with a title property, an exported
// generateMetadata function, or a rendered <title> element. Absence
// yields a single file-level violation.
type PageTitleRule struct{}

func (r *PageTitleRule) ID() string            { return IDPageTitle }
func (r *PageTitleRule) Type() domain.RuleType { return domain.RuleTypeAI }

func (r *PageTitleRule) Scan(file *parser.File, _ domain.RuleOptions) []domain.Violation {
	if !pagectx.IsPageFile(file.Path) {
		return nil
	}
	if hasPageTitle(file) {
		return nil
	}

	metadata := file.ExportNamed("metadata")
	if metadata != nil && metadata.Kind != parser.ExportObject {
		metadata = nil
	}

	return []domain.Violation{{
		Rule:    IDPageTitle,
		File:    file.Path,
		Line:    1,
		Column:  1,
		Message: "page has no title: no metadata.title, generateMetadata, or <title>",
		Fix: &domain.Fix{
			Type:      domain.FixInsertMetadata,
			Attribute: "title",
			Value:     domain.DeferredValue(ResolverPageTitle),
			Target:    &MetadataTarget{File: file, Export: metadata},
		},
	}}
}

func hasPageTitle(file *parser.File) bool {
	if ex := file.ExportNamed("metadata"); ex != nil && ex.Kind == parser.ExportObject && ex.HasKey("title") {
		return true
	}
	if ex := file.ExportNamed("generateMetadata"); ex != nil && ex.Kind == parser.ExportFunction {
		return true
	}
	for _, el := range file.Elements {
		if el.Tag == "title" {
			return true
		}
	}
	return false
}
