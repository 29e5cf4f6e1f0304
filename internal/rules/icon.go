package rules

import (
	"strings"
	"unicode"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// IconClassifier decides whether a tag names an icon and derives a
// human-readable base name from it. It is pluggable so icon-library
// conventions can be extended without touching rule logic.
type IconClassifier interface {
	IsIcon(tag string) bool
	BaseName(tag string) string
}

// DefaultIcons is the classifier used by the built-in rules
var DefaultIcons IconClassifier = &suffixIconClassifier{}

// iconLibPrefixes are the common react-icons pack prefixes (FaHome,
// MdMenu, ...). Stripped only when followed by an uppercase letter.
var iconLibPrefixes = []string{
	"Fa", "Fi", "Md", "Ai", "Bs", "Bi", "Io", "Ri", "Gr", "Hi", "Lu",
	"Tb", "Cg", "Im", "Si", "Sl", "Ti", "Wi", "Di", "Gi", "Go", "Pi",
}

type suffixIconClassifier struct{}

func (c *suffixIconClassifier) IsIcon(tag string) bool {
	if tag == "svg" {
		return true
	}
	if strings.HasSuffix(tag, "Icon") {
		return true
	}
	return parser.IsPascalCase(tag)
}

func (c *suffixIconClassifier) BaseName(tag string) string {
	if tag == "svg" {
		return ""
	}
	name := strings.TrimSuffix(tag, "Icon")
	for _, prefix := range iconLibPrefixes {
		rest := strings.TrimPrefix(name, prefix)
		if rest != name && rest != "" && unicode.IsUpper([]rune(rest)[0]) {
			name = rest
			break
		}
	}
	return strings.ToLower(strings.Join(splitCamel(name), " "))
}

// splitCamel breaks PascalCase/camelCase into words: "ShoppingCart" ->
// ["Shopping", "Cart"].
func splitCamel(s string) []string {
	var words []string
	var current []rune
	for _, r := range s {
		if unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}

// TitleCase uppercases the first letter of every word
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// iconChild returns the first icon-shaped descendant of the element
func iconChild(el *parser.Element) *parser.Element {
	return el.FindChild(func(child *parser.Element) bool {
		return DefaultIcons.IsIcon(child.Tag)
	})
}

// IconNameOf derives the base icon name for an element's icon child,
// e.g. "menu" for <button><MenuIcon/></button>. Empty when no icon child
// exists or the icon is anonymous (svg).
func IconNameOf(el *parser.Element) string {
	icon := iconChild(el)
	if icon == nil {
		return ""
	}
	return DefaultIcons.BaseName(icon.Tag)
}
