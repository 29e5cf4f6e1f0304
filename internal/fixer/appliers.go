package fixer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/parser"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

var errNoTarget = errors.New("fix carries no structural target")

// editsFor translates one fix into byte-range edits against the source
// it targets. The returned source is the buffer the offsets refer to.
func (e *Engine) editsFor(fix *domain.Fix) ([]edit, []byte, error) {
	if fix.Value.IsDeferred() {
		return nil, nil, errors.New("fix value still unresolved")
	}

	switch target := fix.Target.(type) {
	case *rules.ElementTarget:
		src := target.Element.File.Source
		eds, err := e.elementEdits(fix, target)
		return eds, src, err

	case *rules.SpanTarget:
		eds, err := wrapSpan(fix, target)
		return eds, target.File.Source, err

	case *rules.LinkTarget:
		eds, err := hoistAnchor(target)
		return eds, target.Wrapper.File.Source, err

	case *rules.MetadataTarget:
		eds, err := insertMetadata(fix, target)
		return eds, target.File.Source, err
	}
	return nil, nil, errNoTarget
}

func (e *Engine) elementEdits(fix *domain.Fix, target *rules.ElementTarget) ([]edit, error) {
	el := target.Element
	switch fix.Type {
	case domain.FixInsertAttr:
		return []edit{insertAttr(el, fix.Attribute, fix.Value.Literal)}, nil

	case domain.FixReplaceAttr:
		attr := target.Attr
		if attr == nil {
			attr = el.Attr(fix.Attribute)
		}
		if attr == nil {
			// attribute vanished between scan and fix; insert instead
			return []edit{insertAttr(el, fix.Attribute, fix.Value.Literal)}, nil
		}
		if !attr.HasValue {
			return []edit{{
				Start: attr.Start,
				End:   attr.End,
				Text:  attr.Name + "=" + renderAttrValue(fix.Value.Literal),
			}}, nil
		}
		return []edit{{
			Start: attr.ValStart,
			End:   attr.ValEnd,
			Text:  renderAttrValue(fix.Value.Literal),
		}}, nil

	case domain.FixInsertElement:
		start := lineStart(el.File.Source, el.StartByte)
		indent := indentationAt(el.File.Source, start)
		return []edit{{Start: start, End: start, Text: indent + fix.Value.Literal + "\n"}}, nil

	case domain.FixRemoveElement:
		start := lineStart(el.File.Source, el.StartByte)
		end := lineEnd(el.File.Source, el.EndByte)
		return []edit{{Start: start, End: end, Text: ""}}, nil
	}
	return nil, fmt.Errorf("no applier for fix type %s on element target", fix.Type)
}

// insertAttr places the attribute right after the tag name, before any
// existing attributes.
func insertAttr(el *parser.Element, name, value string) edit {
	return edit{
		Start: el.NameEnd,
		End:   el.NameEnd,
		Text:  " " + name + "=" + renderAttrValue(value),
	}
}

// wrapSpan replaces an emoji text run with a labelled span
func wrapSpan(fix *domain.Fix, target *rules.SpanTarget) ([]edit, error) {
	if target.Start < 0 || target.End > len(target.File.Source) || target.Start >= target.End {
		return nil, fmt.Errorf("span [%d,%d) out of range", target.Start, target.End)
	}
	emoji := string(target.File.Source[target.Start:target.End])
	text := `<span role="img" aria-label=` + renderAttrValue(fix.Value.Literal) + `>` + emoji + `</span>`
	return []edit{{Start: target.Start, End: target.End, Text: text}}, nil
}

// hoistAnchor moves a nested anchor's attributes onto its wrapping Link
// and replaces the anchor with its own children. On attribute name
// collision the wrapper's value wins. href never moves: the wrapper owns
// navigation.
func hoistAnchor(target *rules.LinkTarget) ([]edit, error) {
	wrapper, anchor := target.Wrapper, target.Anchor
	if wrapper == nil || anchor == nil {
		return nil, errNoTarget
	}
	src := wrapper.File.Source

	var hoisted []string
	for _, attr := range anchor.Attrs {
		if attr.Name == "href" || wrapper.HasAttr(attr.Name) {
			continue
		}
		hoisted = append(hoisted, string(src[attr.Start:attr.End]))
	}

	var edits []edit
	if len(hoisted) > 0 {
		edits = append(edits, edit{
			Start: wrapper.NameEnd,
			End:   wrapper.NameEnd,
			Text:  " " + strings.Join(hoisted, " "),
		})
	}
	edits = append(edits, edit{
		Start: anchor.StartByte,
		End:   anchor.EndByte,
		Text:  anchor.InnerSource(),
	})
	return edits, nil
}

// insertMetadata merges a property into an exported metadata object, or
// creates the export after the import block when the file has none.
func insertMetadata(fix *domain.Fix, target *rules.MetadataTarget) ([]edit, error) {
	value := renderStringLiteral(fix.Value.Literal)

	if ex := target.Export; ex != nil {
		if ex.ObjInsertPos <= 0 || ex.ObjInsertPos > len(target.File.Source) {
			return nil, errors.New("metadata export has no insertion point")
		}
		text := "\n  " + fix.Attribute + ": " + value + ","
		return []edit{{Start: ex.ObjInsertPos, End: ex.ObjInsertPos, Text: text}}, nil
	}

	decl := "export const metadata = {\n  " + fix.Attribute + ": " + value + ",\n};\n"
	pos := target.File.LastImportEnd
	text := "\n\n" + strings.TrimSuffix(decl, "\n")
	if pos == 0 {
		text = decl + "\n"
	}
	return []edit{{Start: pos, End: pos, Text: text}}, nil
}

// renderAttrValue renders a JSX attribute value. A brace-delimited
// literal is written verbatim as an expression; anything else becomes a
// quoted string with embedded quotes escaped as entities.
func renderAttrValue(v string) string {
	if strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, "&quot;") + `"`
}

// renderStringLiteral renders a JS string literal for metadata objects
func renderStringLiteral(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

// lineStart returns the offset of the first byte of the line containing
// offset.
func lineStart(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}

// lineEnd returns the offset just past the newline ending the line that
// contains offset-1.
func lineEnd(src []byte, offset int) int {
	for offset < len(src) && src[offset] != '\n' {
		offset++
	}
	if offset < len(src) {
		offset++
	}
	return offset
}

// indentationAt returns the leading whitespace of the line starting at
// start.
func indentationAt(src []byte, start int) string {
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}
