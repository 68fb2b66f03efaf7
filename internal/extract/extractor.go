// Package extract turns a parsed Python module into a SourceFile record:
// architecture tags, classes, functions, type definitions and imports, with
// every docstring parsed into a DocModel.
package extract

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/dusk-indust/archpy/internal/annotation"
	"github.com/dusk-indust/archpy/internal/docstring"
	"github.com/dusk-indust/archpy/internal/pyast"
)

// ErrExtraction marks a failure inside extraction itself, as opposed to a
// syntax error in the input.
var ErrExtraction = errors.Base("extraction failed")

// Extractor parses and extracts Python source files. It is safe for
// concurrent use.
type Extractor struct {
	parser *pyast.Parser
}

// New creates an Extractor backed by the tree-sitter Python grammar.
func New() *Extractor {
	return &Extractor{parser: pyast.NewParser()}
}

// Extract parses source and extracts it. It never returns an error: syntax
// errors and internal failures are reported in SourceFile.ParseError.
func (e *Extractor) Extract(ctx context.Context, path string, source []byte) (file SourceFile) {
	defer func() {
		if r := recover(); r != nil {
			file = Failed(path, errors.Errorf("%w: %v", ErrExtraction, r))
		}
	}()

	mod, err := e.parser.Parse(ctx, path, source)
	if err != nil {
		return Failed(path, err)
	}
	return File(path, mod)
}

// File extracts an already parsed module. Only top-level classes, functions
// and imports are reported.
func File(path string, mod *pyast.Module) SourceFile {
	f := newSourceFile(path)

	tags := annotation.Extract(mod.Doc)
	f.Component = tags.Component
	f.Actors = tags.Actors
	f.Relationships = tags.Relationships

	for _, stmt := range mod.Body {
		switch s := stmt.(type) {
		case *pyast.ClassDef:
			f.Classes = append(f.Classes, classEntity(s))
		case *pyast.FunctionDef:
			f.Functions = append(f.Functions, functionEntity(s))
		case *pyast.Import:
			f.Imports = append(f.Imports, importEntities(s)...)
		case *pyast.ImportFrom:
			f.Imports = append(f.Imports, importFromEntity(s))
		case *pyast.Assign, *pyast.AnnAssign, *pyast.TypeAliasStmt, *pyast.ExprStmt, *pyast.OtherStmt:
			// Only relevant to type detection below.
		}

		if t, ok := classifyType(stmt); ok {
			f.Types = append(f.Types, t)
		}
	}
	return f
}

func classEntity(c *pyast.ClassDef) ClassEntity {
	bases := make([]string, 0, len(c.Bases))
	for _, b := range c.Bases {
		bases = append(bases, b.Text())
	}
	return ClassEntity{
		Name:        c.Name,
		BaseClasses: bases,
		Decorators:  decoratorNames(c.Decorators),
		Line:        c.Line(),
		Docstring:   optional(c.Doc),
		ParsedDoc:   docstring.Parse(c.Doc),
		Methods:     methods(c),
		Properties:  properties(c),
	}
}

func functionEntity(fn *pyast.FunctionDef) FunctionEntity {
	return FunctionEntity{
		Name:             fn.Name,
		IsAsync:          fn.Async,
		Decorators:       decoratorNames(fn.Decorators),
		Line:             fn.Line(),
		Docstring:        optional(fn.Doc),
		ParsedDoc:        docstring.Parse(fn.Doc),
		Parameters:       parameters(fn.Params, false),
		ReturnAnnotation: optional(fn.Returns),
	}
}

// decoratorNames reports decorator identities: a call such as
// @app.route("/x") is named by its callee, app.route.
func decoratorNames(decorators []pyast.Expr) []string {
	names := make([]string, 0, len(decorators))
	for _, d := range decorators {
		if call, ok := d.(*pyast.Call); ok && call.Func != nil {
			names = append(names, call.Func.Text())
			continue
		}
		names = append(names, d.Text())
	}
	return names
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
