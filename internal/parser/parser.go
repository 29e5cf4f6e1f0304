package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser wraps tree-sitter for JSX/TSX sources
type Parser struct {
	parser   *sitter.Parser
	language *sitter.Language
	isTS     bool
}

// NewParser creates a parser for JavaScript/JSX files
func NewParser() *Parser {
	parser := sitter.NewParser()
	lang := javascript.GetLanguage()
	parser.SetLanguage(lang)

	return &Parser{
		parser:   parser,
		language: lang,
		isTS:     false,
	}
}

// NewTypeScriptParser creates a parser for TypeScript/TSX files
func NewTypeScriptParser() *Parser {
	parser := sitter.NewParser()
	lang := tsx.GetLanguage()
	parser.SetLanguage(lang)

	return &Parser{
		parser:   parser,
		language: lang,
		isTS:     true,
	}
}

// ParseFile parses a source file into the JSX file model
func (p *Parser) ParseFile(filename string, source []byte) (*File, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}
	// tree-sitter is error tolerant; a tree with ERROR nodes would give
	// the rules wrong byte offsets to edit against, so reject it whole.
	if rootNode.HasError() {
		return nil, fmt.Errorf("syntax errors in %s", filename)
	}

	builder := newFileBuilder(filename, source)
	return builder.build(rootNode), nil
}

// Parse parses source code without an associated path
func (p *Parser) Parse(source []byte) (*File, error) {
	return p.ParseFile("<input>", source)
}

// ParseString parses source code from a string
func (p *Parser) ParseString(source string) (*File, error) {
	return p.Parse([]byte(source))
}

// IsTypeScript returns true if this parser is configured for TSX
func (p *Parser) IsTypeScript() bool {
	return p.isTS
}

// Close closes the parser and frees resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseForLanguage selects the JavaScript or TSX grammar from the file
// extension and parses the source.
func ParseForLanguage(filename string, source []byte) (*File, error) {
	isTS := false
	lower := strings.ToLower(filename)
	for _, ext := range []string{".ts", ".tsx", ".mts", ".cts"} {
		if strings.HasSuffix(lower, ext) {
			isTS = true
			break
		}
	}

	var parser *Parser
	if isTS {
		parser = NewTypeScriptParser()
	} else {
		parser = NewParser()
	}
	defer parser.Close()

	return parser.ParseFile(filename, source)
}
