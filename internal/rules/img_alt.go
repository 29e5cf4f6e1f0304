package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// AltClass is the outcome of alt-text classification
type AltClass string

const (
	AltMissing     AltClass = "missing"
	AltDecorative  AltClass = "decorative"
	AltDynamic     AltClass = "dynamic"
	AltMeaningless AltClass = "meaningless"
	AltValid       AltClass = "valid"
)

var (
	filenameAltPattern = regexp.MustCompile(`(?i)^[\w\-. ]+\.(png|jpe?g|gif|webp|svg|avif|bmp|ico)$`)
	cameraAltPattern   = regexp.MustCompile(`(?i)^(img|image|dsc|dscn|photo|screenshot)[-_ ]?\d+`)
)

// genericAltWords are single words that describe nothing about the image
var genericAltWords = map[string]bool{
	"image":     true,
	"img":       true,
	"photo":     true,
	"picture":   true,
	"pic":       true,
	"icon":      true,
	"logo":      true,
	"graphic":   true,
	"banner":    true,
	"thumbnail": true,
	"untitled":  true,
}

// ClassifyAlt classifies an alt attribute value. alt is nil when the
// attribute is absent; isExpr marks a JSX expression value.
func ClassifyAlt(alt *string, isExpr bool) AltClass {
	if alt == nil {
		return AltMissing
	}
	if isExpr {
		return AltDynamic
	}
	value := strings.TrimSpace(*alt)
	if value == "" {
		return AltDecorative
	}
	if filenameAltPattern.MatchString(value) || cameraAltPattern.MatchString(value) {
		return AltMeaningless
	}
	words := strings.Fields(value)
	if len(words) >= 2 {
		return AltValid
	}
	if genericAltWords[strings.ToLower(words[0])] {
		return AltMeaningless
	}
	return AltValid
}

// ImgAltRule flags images whose alternative text is missing, generic, or
// unverifiable. Fix values require natural-language synthesis.
type ImgAltRule struct{}

func (r *ImgAltRule) ID() string            { return IDImgAlt }
func (r *ImgAltRule) Type() domain.RuleType { return domain.RuleTypeAI }

func (r *ImgAltRule) Scan(file *parser.File, opts domain.RuleOptions) []domain.Violation {
	var out []domain.Violation

	for _, el := range file.Elements {
		if !isImageElement(file, el) {
			continue
		}

		attr := el.Attr("alt")
		var altValue *string
		isExpr := false
		if attr != nil {
			isExpr = attr.IsExpr
			v := attr.Value
			if isExpr {
				v = attr.Expr
			}
			altValue = &v
		}

		switch ClassifyAlt(altValue, isExpr) {
		case AltMissing:
			out = append(out, newViolation(IDImgAlt, el,
				fmt.Sprintf("<%s> is missing an alt attribute", el.Tag),
				&domain.Fix{
					Type:      domain.FixInsertAttr,
					Attribute: "alt",
					Value:     domain.DeferredValue(ResolverImgAltFilename),
					Target:    &ElementTarget{Element: el},
				}))

		case AltDecorative:
			if !opts.FillAlt {
				continue
			}
			out = append(out, newViolation(IDImgAlt, el,
				fmt.Sprintf("<%s> has empty alt text; fillAlt requests a description", el.Tag),
				&domain.Fix{
					Type:      domain.FixReplaceAttr,
					Attribute: "alt",
					Value:     domain.DeferredValue(ResolverImgAltFilename),
					Target:    &ElementTarget{Element: el, Attr: attr},
				}))

		case AltMeaningless:
			out = append(out, newViolation(IDImgAlt, el,
				fmt.Sprintf("alt text %q does not describe the image", *altValue),
				&domain.Fix{
					Type:      domain.FixReplaceAttr,
					Attribute: "alt",
					Value:     domain.DeferredValue(ResolverImgAltFilename),
					Target:    &ElementTarget{Element: el, Attr: attr},
				}))

		case AltDynamic:
			// Computed expressions (i18n lookups, conditionals, templates)
			// and loop-rendered images are trusted as intentional.
			if el.InLoopCallback() {
				continue
			}
			if attr.Info.HasCall || attr.Info.HasTernary || attr.Info.HasTemplate {
				continue
			}
			if attr.Info.BareAccess {
				out = append(out, newViolation(IDImgAlt, el,
					fmt.Sprintf("dynamic alt {%s} cannot be verified; no safe automatic fix", attr.Expr),
					nil))
			}
		}
	}

	return out
}

// isImageElement matches intrinsic <img> and the Next.js image component
// under whatever local name it was imported.
func isImageElement(file *parser.File, el *parser.Element) bool {
	if el.Tag == "img" {
		return true
	}
	return parser.IsPascalCase(el.Tag) && file.ImportSourceOf(el.Tag) == "next/image"
}
