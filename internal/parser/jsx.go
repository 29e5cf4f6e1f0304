package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxSnippetLen bounds the element snippet recorded on violations
const maxSnippetLen = 120

// File is the parsed model of a single JSX/TSX source file. Elements are
// in document order (pre-order). Byte offsets refer to Source and stay
// valid until the file is rewritten.
type File struct {
	Path   string
	Source []byte

	Elements []*Element
	Imports  []*Import
	Exports  []*Export

	// LastImportEnd is the byte offset just past the last top-level
	// import statement, or 0 when the file has none.
	LastImportEnd int
}

// Import represents one import statement
type Import struct {
	// Source is the module specifier, e.g. "next/image" or "./logo.png"
	Source string

	// Default is the local name of the default binding, if any
	Default string

	// Named maps imported name to local binding
	Named map[string]string

	// Namespace is the local name of a namespace binding (import * as x)
	Namespace string

	Line int
}

// ExportKind distinguishes the shapes relevant to scanning
type ExportKind string

const (
	ExportFunction ExportKind = "function"
	ExportObject   ExportKind = "object"
	ExportOther    ExportKind = "other"
)

// Export represents one exported top-level declaration
type Export struct {
	Name    string
	Kind    ExportKind
	Default bool
	Line    int

	// ObjectKeys lists the top-level property names for object exports
	ObjectKeys []string

	// ObjInsertPos is the byte offset just after the opening brace of an
	// object export, used when merging a property into it.
	ObjInsertPos int
}

// HasKey reports whether an object export defines the given property
func (e *Export) HasKey(key string) bool {
	for _, k := range e.ObjectKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ChildKind discriminates element children
type ChildKind int

const (
	ChildElement ChildKind = iota
	ChildText
	ChildExpr
)

// Child is one child of a JSX element: a nested element, a text run, or
// an embedded expression. Start/End are byte offsets into File.Source.
type Child struct {
	Kind    ChildKind
	Element *Element
	Text    string
	Start   int
	End     int
}

// ExprInfo summarizes the syntactic shape of a JSX expression, captured
// at build time so rules never re-parse attribute values.
type ExprInfo struct {
	HasCall     bool
	HasTernary  bool
	HasTemplate bool

	// BareAccess is true when the expression is only an identifier or a
	// property access chain, with nothing computed around it.
	BareAccess bool
}

// Attribute is one JSX attribute. For string values, Value holds the
// unquoted text and ValStart/ValEnd span the quoted token. For expression
// values, Expr holds the text between the braces and ValStart/ValEnd span
// the braces.
type Attribute struct {
	Name     string
	Value    string
	Expr     string
	IsExpr   bool
	HasValue bool
	Info     ExprInfo

	Start    int
	End      int
	ValStart int
	ValEnd   int
	Line     int
}

// Element is one JSX element with positional data for both reporting
// (1-indexed Line/Column) and mutation (byte offsets).
type Element struct {
	Tag         string
	File        *File
	Parent      *Element
	Attrs       []*Attribute
	Children    []*Child
	SelfClosing bool

	Line   int
	Column int

	// Whole element span
	StartByte int
	EndByte   int

	// Opening tag span; for self-closing elements this is the whole tag
	OpenStart int
	OpenEnd   int

	// NameEnd is the byte offset just after the tag name inside the
	// opening tag: the insertion point for new attributes.
	NameEnd int

	// Closing tag span; zero for self-closing elements
	CloseStart int
	CloseEnd   int

	// LoopVar is the parameter name of the nearest enclosing
	// .map/.flatMap/.forEach callback, if any.
	LoopVar string

	// LoopMethods lists the iteration methods enclosing this element,
	// innermost last.
	LoopMethods []string
}

// Attr returns the attribute with the given name, or nil
func (e *Element) Attr(name string) *Attribute {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// HasAttr reports whether the attribute is present at all
func (e *Element) HasAttr(name string) bool {
	return e.Attr(name) != nil
}

// InLoopCallback reports whether the element sits inside a
// .map/.flatMap/.forEach callback.
func (e *Element) InLoopCallback() bool {
	return len(e.LoopMethods) > 0
}

// HasTextContent reports whether any direct or nested child carries
// non-whitespace text.
func (e *Element) HasTextContent() bool {
	for _, c := range e.Children {
		switch c.Kind {
		case ChildText:
			if strings.TrimSpace(c.Text) != "" {
				return true
			}
		case ChildElement:
			if c.Element.HasTextContent() {
				return true
			}
		}
	}
	return false
}

// HasExprContent reports whether any direct child is an expression
func (e *Element) HasExprContent() bool {
	for _, c := range e.Children {
		if c.Kind == ChildExpr {
			return true
		}
	}
	return false
}

// ChildElements returns the direct element children
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Kind == ChildElement {
			out = append(out, c.Element)
		}
	}
	return out
}

// FindChild returns the first descendant matching the predicate,
// depth-first.
func (e *Element) FindChild(match func(*Element) bool) *Element {
	for _, c := range e.Children {
		if c.Kind != ChildElement {
			continue
		}
		if match(c.Element) {
			return c.Element
		}
		if found := c.Element.FindChild(match); found != nil {
			return found
		}
	}
	return nil
}

// InnerSource returns the raw source between the opening and closing
// tags. Empty for self-closing elements.
func (e *Element) InnerSource() string {
	if e.SelfClosing || e.CloseStart <= e.OpenEnd {
		return ""
	}
	return string(e.File.Source[e.OpenEnd:e.CloseStart])
}

// Snippet returns the opening tag text, bounded for reporting
func (e *Element) Snippet() string {
	s := string(e.File.Source[e.OpenStart:e.OpenEnd])
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxSnippetLen {
		cut := maxSnippetLen - 3
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}

// IsPascalCase reports whether a tag names a component rather than an
// intrinsic element.
func IsPascalCase(tag string) bool {
	if tag == "" {
		return false
	}
	r := []rune(tag)[0]
	return unicode.IsUpper(r)
}

// HeadingLevel returns 1..6 for h1..h6 tags and 0 otherwise
func HeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// Position converts a byte offset into a 1-indexed line and column
func (f *File) Position(offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	for _, b := range f.Source[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Headings returns the heading elements of the file in document order
func (f *File) Headings() []*Element {
	var out []*Element
	for _, el := range f.Elements {
		if HeadingLevel(el.Tag) > 0 {
			out = append(out, el)
		}
	}
	return out
}

// ImportFor returns the import statement that binds the given local
// name, or nil.
func (f *File) ImportFor(local string) *Import {
	for _, imp := range f.Imports {
		if imp.Default == local || imp.Namespace == local {
			return imp
		}
		for _, l := range imp.Named {
			if l == local {
				return imp
			}
		}
	}
	return nil
}

// ImportSourceOf returns the module specifier binding local, or ""
func (f *File) ImportSourceOf(local string) string {
	if imp := f.ImportFor(local); imp != nil {
		return imp.Source
	}
	return ""
}

// ExportNamed returns the export with the given name, or nil
func (f *File) ExportNamed(name string) *Export {
	for _, ex := range f.Exports {
		if ex.Name == name {
			return ex
		}
	}
	return nil
}

// DefaultExportName returns the name of the default-exported declaration,
// or "".
func (f *File) DefaultExportName() string {
	for _, ex := range f.Exports {
		if ex.Default {
			return ex.Name
		}
	}
	return ""
}
