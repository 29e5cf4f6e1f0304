// Package pagectx extracts lightweight page context from a parsed file:
// the component name, the route implied by the file path, and nearby
// heading text. The AI pipeline folds this into generation prompts and
// the page-title heuristic derives titles from it.
package pagectx

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
)

// Context is the extracted page context for one file
type Context struct {
	Component string
	Route     string
	Headings  []string
	Locale    string
}

// maxHeadings bounds how much heading text a prompt carries
const maxHeadings = 3

// Extract builds the context for a file
func Extract(file *parser.File, locale string) Context {
	return Context{
		Component: ComponentName(file),
		Route:     RouteOf(file.Path),
		Headings:  headingTexts(file),
		Locale:    locale,
	}
}

// ComponentName returns the page's component name: the default export
// when named, otherwise the first exported PascalCase function.
func ComponentName(file *parser.File) string {
	if name := file.DefaultExportName(); name != "" {
		return name
	}
	for _, ex := range file.Exports {
		if ex.Kind == parser.ExportFunction && parser.IsPascalCase(ex.Name) {
			return ex.Name
		}
	}
	return ""
}

func headingTexts(file *parser.File) []string {
	var out []string
	for _, h := range file.Headings() {
		var parts []string
		for _, c := range h.Children {
			if c.Kind == parser.ChildText {
				if t := strings.TrimSpace(c.Text); t != "" {
					parts = append(parts, t)
				}
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, " "))
		}
		if len(out) >= maxHeadings {
			break
		}
	}
	return out
}

// RouteOf derives the URL route from a source path following app/ and
// pages/ router conventions. Route groups "(group)" are dropped and
// dynamic segments keep their parameter name.
func RouteOf(path string) string {
	segments := routerSegments(path)
	if segments == nil {
		return ""
	}
	var route []string
	for _, seg := range segments {
		if strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")") {
			continue
		}
		seg = strings.TrimPrefix(strings.TrimSuffix(seg, "]"), "[")
		seg = strings.TrimPrefix(seg, "...")
		if seg != "" {
			route = append(route, seg)
		}
	}
	return "/" + strings.Join(route, "/")
}

// LastSegment returns the last non-empty route segment, "" for the root
func LastSegment(path string) string {
	route := RouteOf(path)
	parts := strings.Split(strings.Trim(route, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	last := parts[len(parts)-1]
	return last
}

// IsPageFile reports whether the path is a route page: app router
// page.* files, or pages router files that are not private (_app,
// _document) and not API routes.
func IsPageFile(path string) bool {
	norm := filepath.ToSlash(path)
	parts := strings.Split(norm, "/")
	base := parts[len(parts)-1]
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for i, part := range parts[:len(parts)-1] {
		switch part {
		case "app":
			return stem == "page"
		case "pages":
			rest := parts[i+1:]
			if len(rest) > 0 && rest[0] == "api" {
				return false
			}
			return !strings.HasPrefix(base, "_")
		}
	}
	return false
}

// TitleFor derives a human page title from the route's last segment,
// falling back to the component name. Returns "" when neither yields
// anything usable.
func TitleFor(path, component string) string {
	if seg := LastSegment(path); seg != "" {
		return titleCaseWords(deslug(seg))
	}
	if component != "" {
		name := strings.TrimSuffix(component, "Page")
		return titleCaseWords(strings.Join(splitCamel(name), " "))
	}
	return ""
}

// routerSegments returns the path segments after the app/ or pages/
// directory with the page file name folded in, or nil for non-router
// paths.
func routerSegments(path string) []string {
	norm := filepath.ToSlash(path)
	parts := strings.Split(norm, "/")
	base := parts[len(parts)-1]
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for i, part := range parts[:len(parts)-1] {
		if part != "app" && part != "pages" {
			continue
		}
		segments := append([]string{}, parts[i+1:len(parts)-1]...)
		if stem != "page" && stem != "index" {
			segments = append(segments, stem)
		}
		return segments
	}
	return nil
}

func deslug(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", "%20", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

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
