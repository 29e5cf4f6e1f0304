package rules

import (
	"net/url"
	"path"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/pagectx"
)

// Resolver identifiers for deferred fix values. The AI pipeline uses
// these as last-resort heuristics after generation is exhausted; without
// a configured provider they are the only resolution stage.
const (
	ResolverImgAltFilename = "img-alt-filename"
	ResolverIconLabel      = "icon-label"
	ResolverInputLabel     = "input-label"
	ResolverPageTitle      = "page-title-route"
)

// Resolve runs the heuristic resolver named by the fix's deferred value.
// Returns false when no acceptable text can be derived, in which case
// the fix must be dropped rather than defaulted to the placeholder.
func Resolve(fix *domain.Fix) (string, bool) {
	if fix == nil || !fix.Value.IsDeferred() {
		return "", false
	}
	switch fix.Value.ResolverID {
	case ResolverImgAltFilename:
		if target, ok := fix.Target.(*ElementTarget); ok {
			return HeuristicAlt(ImageSrc(target))
		}
	case ResolverIconLabel:
		if target, ok := fix.Target.(*ElementTarget); ok {
			name := IconNameOf(target.Element)
			if name == "" {
				return "", false
			}
			return TitleCase(name), true
		}
	case ResolverInputLabel:
		if target, ok := fix.Target.(*ElementTarget); ok {
			if attr := target.Element.Attr("type"); attr != nil && attr.Value != "" {
				if attr.Value == "image" {
					return "Submit", true
				}
				return TitleCase(attr.Value), true
			}
		}
	case ResolverPageTitle:
		if target, ok := fix.Target.(*MetadataTarget); ok {
			component := pagectx.ComponentName(target.File)
			if title := pagectx.TitleFor(target.File.Path, component); title != "" {
				return title, true
			}
		}
	}
	return "", false
}

// ImageSrc returns the image source reference for an element: the src
// literal, or the imported module path when src is a bare identifier.
func ImageSrc(target *ElementTarget) string {
	el := target.Element
	src := el.Attr("src")
	if src == nil {
		return ""
	}
	if !src.IsExpr {
		return src.Value
	}
	expr := strings.TrimSpace(src.Expr)
	// import logo from "./logo.png"; <img src={logo}/>
	if imported := el.File.ImportSourceOf(expr); imported != "" {
		return imported
	}
	// {logo.src} from next static imports
	if base := strings.TrimSuffix(expr, ".src"); base != expr {
		if imported := el.File.ImportSourceOf(base); imported != "" {
			return imported
		}
	}
	return ""
}

// ImageIdent returns the local identifier a src expression refers to,
// or "" for literal sources. Used to follow barrel re-exports when the
// imported module path is a directory.
func ImageIdent(target *ElementTarget) string {
	src := target.Element.Attr("src")
	if src == nil || !src.IsExpr {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSpace(src.Expr), ".src")
}

// HeuristicAlt derives alt text from an image file name: strip the
// extension, de-slug, title-case, append "image".
func HeuristicAlt(src string) (string, bool) {
	if src == "" {
		return "", false
	}
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		src = u.Path
	}
	base := path.Base(src)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ", "%20", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" || base == "." || base == "/" {
		return "", false
	}
	return TitleCase(base) + " image", true
}
