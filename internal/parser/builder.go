package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// loopMethods are the iteration callbacks whose JSX output renders one
// element per collection item.
var loopMethods = map[string]bool{
	"map":     true,
	"flatMap": true,
	"forEach": true,
}

type loopFrame struct {
	method string
	param  string
}

// fileBuilder converts a tree-sitter CST into the JSX file model
type fileBuilder struct {
	file   *File
	source []byte
}

func newFileBuilder(filename string, source []byte) *fileBuilder {
	return &fileBuilder{
		file: &File{
			Path:   filename,
			Source: source,
		},
		source: source,
	}
}

func (b *fileBuilder) build(root *sitter.Node) *File {
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_statement":
			b.buildImport(child)
		case "export_statement":
			b.buildExport(child)
		}
	}

	b.walk(root, nil, nil)
	return b.file
}

// walk descends the CST looking for JSX roots and loop-callback
// boundaries. JSX subtrees are handled by buildElement, which maintains
// parent/child structure itself.
func (b *fileBuilder) walk(n *sitter.Node, parent *Element, frames []loopFrame) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "jsx_element", "jsx_self_closing_element":
		b.buildElement(n, parent, frames)
		return
	case "jsx_fragment":
		for i := 0; i < int(n.ChildCount()); i++ {
			b.walk(n.Child(i), parent, frames)
		}
		return
	case "call_expression":
		if method, callback, param := b.loopCallback(n); callback != nil {
			inner := append(append([]loopFrame{}, frames...), loopFrame{method: method, param: param})
			for i := 0; i < int(n.ChildCount()); i++ {
				child := n.Child(i)
				if child == nil {
					continue
				}
				if child.Type() == "arguments" {
					b.walkCallArgs(child, callback, parent, frames, inner)
				} else {
					b.walk(child, parent, frames)
				}
			}
			return
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		b.walk(n.Child(i), parent, frames)
	}
}

// walkCallArgs walks an arguments node, entering the loop callback with
// the extended frame stack and everything else with the outer one.
func (b *fileBuilder) walkCallArgs(args, callback *sitter.Node, parent *Element, outer, inner []loopFrame) {
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		if child == nil {
			continue
		}
		if sameNode(child, callback) {
			b.walk(child, parent, inner)
		} else {
			b.walk(child, parent, outer)
		}
	}
}

// sameNode compares nodes by position: the binding allocates a fresh
// wrapper on every Child call, so pointer identity is meaningless.
func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// loopCallback recognizes xs.map(cb) / xs.flatMap(cb) / xs.forEach(cb)
// and returns the method name, the callback node and its first parameter
// name when the parameter is a plain identifier.
func (b *fileBuilder) loopCallback(call *sitter.Node) (string, *sitter.Node, string) {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "member_expression" {
		return "", nil, ""
	}
	prop := fn.ChildByFieldName("property")
	if prop == nil {
		return "", nil, ""
	}
	method := prop.Content(b.source)
	if !loopMethods[method] {
		return "", nil, ""
	}

	args := call.ChildByFieldName("arguments")
	if args == nil {
		return "", nil, ""
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg == nil {
			continue
		}
		if arg.Type() == "arrow_function" || arg.Type() == "function_expression" || arg.Type() == "function" {
			return method, arg, b.callbackParam(arg)
		}
	}
	return "", nil, ""
}

func (b *fileBuilder) callbackParam(fn *sitter.Node) string {
	if p := fn.ChildByFieldName("parameter"); p != nil && p.Type() == "identifier" {
		return p.Content(b.source)
	}
	if params := fn.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			if p == nil {
				continue
			}
			if p.Type() == "identifier" {
				return p.Content(b.source)
			}
			if p.Type() == "required_parameter" || p.Type() == "optional_parameter" {
				if pat := p.ChildByFieldName("pattern"); pat != nil && pat.Type() == "identifier" {
					return pat.Content(b.source)
				}
			}
			// Destructured parameters give us no stable loop variable.
			return ""
		}
	}
	return ""
}

func (b *fileBuilder) buildElement(n *sitter.Node, parent *Element, frames []loopFrame) *Element {
	var opening, closing *sitter.Node
	selfClosing := n.Type() == "jsx_self_closing_element"

	if selfClosing {
		opening = n
	} else {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child == nil {
				continue
			}
			switch child.Type() {
			case "jsx_opening_element":
				if opening == nil {
					opening = child
				}
			case "jsx_closing_element":
				closing = child
			}
		}
		if opening == nil {
			return nil
		}
	}

	nameNode := opening.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	el := &Element{
		Tag:         nameNode.Content(b.source),
		File:        b.file,
		Parent:      parent,
		SelfClosing: selfClosing,
		Line:        int(n.StartPoint().Row) + 1,
		Column:      int(n.StartPoint().Column) + 1,
		StartByte:   int(n.StartByte()),
		EndByte:     int(n.EndByte()),
		OpenStart:   int(opening.StartByte()),
		OpenEnd:     int(opening.EndByte()),
		NameEnd:     int(nameNode.EndByte()),
	}
	if closing != nil {
		el.CloseStart = int(closing.StartByte())
		el.CloseEnd = int(closing.EndByte())
	}
	for _, f := range frames {
		el.LoopMethods = append(el.LoopMethods, f.method)
		if f.param != "" {
			el.LoopVar = f.param
		}
	}

	for i := 0; i < int(opening.ChildCount()); i++ {
		child := opening.Child(i)
		if child != nil && child.Type() == "jsx_attribute" {
			el.Attrs = append(el.Attrs, b.buildAttribute(child))
		}
	}

	b.file.Elements = append(b.file.Elements, el)
	if parent != nil {
		parent.Children = append(parent.Children, &Child{
			Kind:    ChildElement,
			Element: el,
			Start:   el.StartByte,
			End:     el.EndByte,
		})
	}

	if !selfClosing {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child == nil || child.Type() == "jsx_opening_element" || child.Type() == "jsx_closing_element" {
				continue
			}
			switch child.Type() {
			case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
				b.walk(child, el, frames)
			case "jsx_text":
				el.Children = append(el.Children, &Child{
					Kind:  ChildText,
					Text:  child.Content(b.source),
					Start: int(child.StartByte()),
					End:   int(child.EndByte()),
				})
			case "jsx_expression":
				el.Children = append(el.Children, &Child{
					Kind:  ChildExpr,
					Text:  b.exprText(child),
					Start: int(child.StartByte()),
					End:   int(child.EndByte()),
				})
				b.walk(child, el, frames)
			}
		}
	}

	return el
}

func (b *fileBuilder) buildAttribute(n *sitter.Node) *Attribute {
	attr := &Attribute{
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		Line:  int(n.StartPoint().Row) + 1,
	}

	nameNode := n.Child(0)
	if nameNode != nil {
		attr.Name = nameNode.Content(b.source)
	}

	for i := 1; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "string":
			attr.HasValue = true
			attr.Value = trimQuotes(child.Content(b.source))
			attr.ValStart = int(child.StartByte())
			attr.ValEnd = int(child.EndByte())
		case "jsx_expression":
			attr.HasValue = true
			attr.IsExpr = true
			attr.Expr = b.exprText(child)
			attr.ValStart = int(child.StartByte())
			attr.ValEnd = int(child.EndByte())
			attr.Info = b.analyzeExpr(child)
		}
	}
	return attr
}

// exprText returns the expression source without the surrounding braces
func (b *fileBuilder) exprText(n *sitter.Node) string {
	text := n.Content(b.source)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return strings.TrimSpace(text)
}

func (b *fileBuilder) analyzeExpr(n *sitter.Node) ExprInfo {
	info := ExprInfo{}
	var inspect func(node *sitter.Node)
	inspect = func(node *sitter.Node) {
		if node == nil {
			return
		}
		switch node.Type() {
		case "call_expression":
			info.HasCall = true
		case "ternary_expression", "conditional_expression":
			info.HasTernary = true
		case "template_string":
			info.HasTemplate = true
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			inspect(node.Child(i))
		}
	}
	inspect(n)

	if !info.HasCall && !info.HasTernary && !info.HasTemplate {
		if inner := n.NamedChild(0); inner != nil {
			t := inner.Type()
			info.BareAccess = t == "identifier" || t == "member_expression"
		}
	}
	return info
}

func (b *fileBuilder) buildImport(n *sitter.Node) {
	imp := &Import{
		Named: map[string]string{},
		Line:  int(n.StartPoint().Row) + 1,
	}
	if src := n.ChildByFieldName("source"); src != nil {
		imp.Source = trimQuotes(src.Content(b.source))
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		clause := n.Child(i)
		if clause == nil || clause.Type() != "import_clause" {
			continue
		}
		for j := 0; j < int(clause.ChildCount()); j++ {
			part := clause.Child(j)
			if part == nil {
				continue
			}
			switch part.Type() {
			case "identifier":
				imp.Default = part.Content(b.source)
			case "namespace_import":
				for k := 0; k < int(part.ChildCount()); k++ {
					if id := part.Child(k); id != nil && id.Type() == "identifier" {
						imp.Namespace = id.Content(b.source)
					}
				}
			case "named_imports":
				for k := 0; k < int(part.NamedChildCount()); k++ {
					spec := part.NamedChild(k)
					if spec == nil || spec.Type() != "import_specifier" {
						continue
					}
					name := spec.ChildByFieldName("name")
					if name == nil {
						continue
					}
					imported := name.Content(b.source)
					local := imported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = alias.Content(b.source)
					}
					imp.Named[imported] = local
				}
			}
		}
	}

	b.file.Imports = append(b.file.Imports, imp)
	if end := int(n.EndByte()); end > b.file.LastImportEnd {
		b.file.LastImportEnd = end
	}
}

func (b *fileBuilder) buildExport(n *sitter.Node) {
	ex := &Export{
		Kind: ExportOther,
		Line: int(n.StartPoint().Row) + 1,
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == "default" {
			ex.Default = true
		}
	}

	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		if value := n.ChildByFieldName("value"); value != nil {
			switch value.Type() {
			case "identifier":
				ex.Name = value.Content(b.source)
			case "function_declaration", "function_expression", "function":
				ex.Kind = ExportFunction
				if name := value.ChildByFieldName("name"); name != nil {
					ex.Name = name.Content(b.source)
				}
			}
			b.file.Exports = append(b.file.Exports, ex)
		}
		return
	}

	switch decl.Type() {
	case "function_declaration", "generator_function_declaration":
		ex.Kind = ExportFunction
		if name := decl.ChildByFieldName("name"); name != nil {
			ex.Name = name.Content(b.source)
		}
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			d := decl.NamedChild(i)
			if d == nil || d.Type() != "variable_declarator" {
				continue
			}
			if name := d.ChildByFieldName("name"); name != nil {
				ex.Name = name.Content(b.source)
			}
			if value := unwrapExpression(d.ChildByFieldName("value")); value != nil {
				switch value.Type() {
				case "object":
					ex.Kind = ExportObject
					ex.ObjInsertPos = int(value.StartByte()) + 1
					ex.ObjectKeys = b.objectKeys(value)
				case "arrow_function", "function_expression", "function":
					ex.Kind = ExportFunction
				}
			}
			break
		}
	}

	b.file.Exports = append(b.file.Exports, ex)
}

func (b *fileBuilder) objectKeys(obj *sitter.Node) []string {
	var keys []string
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		prop := obj.NamedChild(i)
		if prop == nil {
			continue
		}
		switch prop.Type() {
		case "pair":
			if key := prop.ChildByFieldName("key"); key != nil {
				keys = append(keys, trimQuotes(key.Content(b.source)))
			}
		case "shorthand_property_identifier":
			keys = append(keys, prop.Content(b.source))
		}
	}
	return keys
}

// unwrapExpression strips TypeScript wrappers (as/satisfies/parens) so
// `export const metadata = {...} satisfies Metadata` still reads as an
// object export.
func unwrapExpression(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case "as_expression", "satisfies_expression", "parenthesized_expression", "non_null_expression":
			n = n.NamedChild(0)
		default:
			return n
		}
	}
	return nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '`' && s[len(s)-1] == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
