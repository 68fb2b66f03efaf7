package pyast

import (
	"bytes"
	"context"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	"gitlab.com/tozd/go/errors"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parser turns Python source text into a Module using the tree-sitter
// Python grammar. A new tree-sitter parser is created per Parse call and the
// grammar handle is read-only, so a Parser is safe for concurrent use.
type Parser struct {
	language *tree_sitter.Language
}

// NewParser creates a Parser with the Python grammar loaded.
func NewParser() *Parser {
	return &Parser{
		language: tree_sitter.NewLanguage(tree_sitter_python.Language()),
	}
}

// Parse builds the syntax tree for source. A *SyntaxError is returned when
// the source does not parse cleanly; any other error means the parser
// itself could not run.
func (p *Parser) Parse(ctx context.Context, path string, source []byte) (*Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source = bytes.TrimPrefix(source, utf8BOM)

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, errors.Errorf("set language python: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.Errorf("tree-sitter returned nil tree for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstSyntaxError(root, source)
	}
	if err := structuralError(root); err != nil {
		return nil, err
	}

	l := &lowerer{source: source}
	return l.module(root), nil
}

// firstSyntaxError locates the earliest ERROR or MISSING node below root.
func firstSyntaxError(root *tree_sitter.Node, source []byte) *SyntaxError {
	var found *tree_sitter.Node
	var search func(n *tree_sitter.Node)
	search = func(n *tree_sitter.Node) {
		if found != nil || n == nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			found = n
			return
		}
		if !n.HasError() {
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			search(n.Child(i))
		}
	}
	search(root)

	if found == nil {
		return &SyntaxError{Line: 1, Msg: "invalid syntax"}
	}

	line := int(found.StartPosition().Row) + 1
	if found.IsMissing() {
		return &SyntaxError{Line: line, Msg: "expected '" + found.Kind() + "'"}
	}

	text := found.Utf8Text(source)
	switch {
	case startsUnterminatedString(text):
		return &SyntaxError{Line: line, Msg: "unterminated string literal"}
	case found.ChildCount() > 0 && isOpenBracket(found.Child(0).Kind()):
		return &SyntaxError{Line: line, Msg: "'" + found.Child(0).Kind() + "' was never closed"}
	}
	return &SyntaxError{Line: line, Msg: "invalid syntax"}
}

func startsUnterminatedString(text string) bool {
	for _, q := range []string{`"""`, `'''`} {
		if len(text) >= 3 && text[:3] == q {
			return len(text) < 6 || text[len(text)-3:] != q
		}
	}
	return false
}

func isOpenBracket(kind string) bool {
	return kind == "(" || kind == "[" || kind == "{"
}
