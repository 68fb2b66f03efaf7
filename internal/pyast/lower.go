package pyast

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// lowerer converts tree-sitter nodes into the closed Stmt/Expr union.
type lowerer struct {
	source []byte
}

func (l *lowerer) text(n *tree_sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(l.source)
}

func line(n *tree_sitter.Node) int {
	return int(n.StartPosition().Row) + 1
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	if n == nil {
		return nil
	}
	var out []*tree_sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

func (l *lowerer) module(root *tree_sitter.Node) *Module {
	return &Module{
		Doc:  l.docstring(root),
		Body: l.block(root),
	}
}

func (l *lowerer) block(n *tree_sitter.Node) []Stmt {
	children := namedChildren(n)
	stmts := make([]Stmt, 0, len(children))
	for _, child := range children {
		stmts = append(stmts, l.stmt(child))
	}
	return stmts
}

// docstring returns the cleaned docstring of a module or block: the value of
// a leading statement made of plain string literals, adjacent ones joined.
func (l *lowerer) docstring(container *tree_sitter.Node) string {
	children := namedChildren(container)
	if len(children) == 0 || children[0].Kind() != "expression_statement" {
		return ""
	}
	exprs := namedChildren(children[0])
	if len(exprs) != 1 {
		return ""
	}

	// Adjacent literals form one constant, so each part must be a plain str.
	parts := []*tree_sitter.Node{exprs[0]}
	switch exprs[0].Kind() {
	case "string":
	case "concatenated_string":
		parts = namedChildren(exprs[0])
	default:
		return ""
	}

	var b strings.Builder
	for _, part := range parts {
		if part.Kind() != "string" {
			return ""
		}
		value, ok := literalValue(l.text(part))
		if !ok {
			return ""
		}
		b.WriteString(value)
	}
	return CleanDoc(b.String())
}

func (l *lowerer) stmt(n *tree_sitter.Node) Stmt {
	switch n.Kind() {
	case "class_definition":
		return l.classDef(n, nil)

	case "function_definition":
		return l.funcDef(n, nil)

	case "decorated_definition":
		var decorators []Expr
		for _, child := range namedChildren(n) {
			if child.Kind() != "decorator" {
				continue
			}
			if inner := namedChildren(child); len(inner) > 0 {
				decorators = append(decorators, l.expr(inner[0]))
			}
		}
		def := n.ChildByFieldName("definition")
		if def != nil {
			switch def.Kind() {
			case "class_definition":
				return l.classDef(def, decorators)
			case "function_definition":
				return l.funcDef(def, decorators)
			}
		}

	case "expression_statement":
		return l.exprStmt(n)

	case "import_statement":
		return &Import{Pos: Pos{line(n)}, Names: l.aliases(namedChildren(n))}

	case "import_from_statement":
		return l.importFrom(n)

	case "future_import_statement":
		return &ImportFrom{
			Pos:    Pos{line(n)},
			Module: "__future__",
			Names:  l.aliases(namedChildren(n)),
		}

	case "type_alias_statement":
		name := l.text(n.ChildByFieldName("left"))
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		return &TypeAliasStmt{
			Pos:   Pos{line(n)},
			Name:  strings.TrimSpace(name),
			Value: l.text(n.ChildByFieldName("right")),
		}
	}
	return &OtherStmt{Pos: Pos{line(n)}, Kind: n.Kind()}
}

func (l *lowerer) classDef(n *tree_sitter.Node, decorators []Expr) *ClassDef {
	def := &ClassDef{
		Pos:        Pos{line(n)},
		Name:       l.text(n.ChildByFieldName("name")),
		Decorators: decorators,
	}
	for _, base := range namedChildren(n.ChildByFieldName("superclasses")) {
		if base.Kind() == "keyword_argument" {
			continue
		}
		def.Bases = append(def.Bases, l.expr(base))
	}
	body := n.ChildByFieldName("body")
	def.Doc = l.docstring(body)
	def.Body = l.block(body)
	return def
}

func (l *lowerer) funcDef(n *tree_sitter.Node, decorators []Expr) *FunctionDef {
	def := &FunctionDef{
		Pos:        Pos{line(n)},
		Name:       l.text(n.ChildByFieldName("name")),
		Decorators: decorators,
		Params:     l.params(n.ChildByFieldName("parameters")),
		Returns:    l.text(n.ChildByFieldName("return_type")),
		Doc:        l.docstring(n.ChildByFieldName("body")),
	}
	if first := n.Child(0); first != nil && first.Kind() == "async" {
		def.Async = true
	}
	return def
}

func (l *lowerer) params(n *tree_sitter.Node) []Param {
	var params []Param
	keywordOnly := false

	add := func(p Param) {
		if p.Kind == ParamPositional && keywordOnly {
			p.Kind = ParamKeywordOnly
		}
		params = append(params, p)
	}

	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "identifier":
			add(Param{Name: l.text(child)})

		case "typed_parameter":
			inner := namedChildren(child)
			if len(inner) == 0 {
				continue
			}
			p := l.patternParam(inner[0])
			p.Annotation = l.text(child.ChildByFieldName("type"))
			if p.Kind == ParamVarPositional {
				keywordOnly = true
			}
			add(p)

		case "default_parameter":
			add(Param{
				Name:    l.text(child.ChildByFieldName("name")),
				Default: l.text(child.ChildByFieldName("value")),
			})

		case "typed_default_parameter":
			add(Param{
				Name:       l.text(child.ChildByFieldName("name")),
				Annotation: l.text(child.ChildByFieldName("type")),
				Default:    l.text(child.ChildByFieldName("value")),
			})

		case "list_splat_pattern", "dictionary_splat_pattern":
			p := l.patternParam(child)
			if p.Kind == ParamVarPositional {
				keywordOnly = true
			}
			add(p)

		case "keyword_separator":
			keywordOnly = true

		case "positional_separator":
			for i := range params {
				params[i].PositionalOnly = true
			}
		}
	}
	return params
}

// patternParam resolves the name and kind of a parameter pattern node.
func (l *lowerer) patternParam(n *tree_sitter.Node) Param {
	name := l.text(n)
	if inner := namedChildren(n); len(inner) > 0 {
		name = l.text(inner[0])
	}
	switch n.Kind() {
	case "list_splat_pattern":
		return Param{Name: strings.TrimLeft(name, "*"), Kind: ParamVarPositional}
	case "dictionary_splat_pattern":
		return Param{Name: strings.TrimLeft(name, "*"), Kind: ParamVarKeyword}
	}
	return Param{Name: name}
}

func (l *lowerer) exprStmt(n *tree_sitter.Node) Stmt {
	children := namedChildren(n)
	pos := Pos{line(n)}
	if len(children) != 1 {
		return &ExprStmt{Pos: pos, Value: &OtherExpr{Source: Source{l.text(n)}, Kind: "tuple"}}
	}

	child := children[0]
	switch child.Kind() {
	case "assignment":
		return l.assignment(child, pos)
	case "augmented_assignment":
		return &OtherStmt{Pos: pos, Kind: child.Kind()}
	}
	return &ExprStmt{Pos: pos, Value: l.expr(child)}
}

func (l *lowerer) assignment(n *tree_sitter.Node, pos Pos) Stmt {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")

	if typ := n.ChildByFieldName("type"); typ != nil {
		return &AnnAssign{
			Pos:        pos,
			Target:     l.expr(left),
			Annotation: l.text(typ),
			Value:      l.expr(right),
		}
	}

	targets := []Expr{l.expr(left)}
	for right != nil && right.Kind() == "assignment" && right.ChildByFieldName("type") == nil {
		targets = append(targets, l.expr(right.ChildByFieldName("left")))
		right = right.ChildByFieldName("right")
	}
	return &Assign{Pos: pos, Targets: targets, Value: l.expr(right)}
}

func (l *lowerer) importFrom(n *tree_sitter.Node) *ImportFrom {
	stmt := &ImportFrom{Pos: Pos{line(n)}}

	children := namedChildren(n)
	if len(children) == 0 {
		return stmt
	}

	module := children[0]
	if module.Kind() == "relative_import" {
		for _, part := range namedChildren(module) {
			switch part.Kind() {
			case "import_prefix":
				stmt.Level = strings.Count(l.text(part), ".")
			case "dotted_name":
				stmt.Module = l.text(part)
			}
		}
	} else {
		stmt.Module = l.text(module)
	}

	stmt.Names = l.aliases(children[1:])
	return stmt
}

func (l *lowerer) aliases(nodes []*tree_sitter.Node) []Alias {
	var out []Alias
	for _, n := range nodes {
		switch n.Kind() {
		case "dotted_name", "identifier":
			out = append(out, Alias{Name: l.text(n)})
		case "aliased_import":
			out = append(out, Alias{
				Name:   l.text(n.ChildByFieldName("name")),
				AsName: l.text(n.ChildByFieldName("alias")),
			})
		case "wildcard_import":
			out = append(out, Alias{Name: "*"})
		}
	}
	return out
}

func (l *lowerer) expr(n *tree_sitter.Node) Expr {
	if n == nil {
		return nil
	}
	src := Source{l.text(n)}

	switch n.Kind() {
	case "identifier":
		return &Name{Source: src, ID: src.Src}

	case "attribute":
		return &Attribute{
			Source: src,
			Value:  l.expr(n.ChildByFieldName("object")),
			Attr:   l.text(n.ChildByFieldName("attribute")),
		}

	case "subscript":
		return &Subscript{Source: src, Value: l.expr(n.ChildByFieldName("value"))}

	case "binary_operator":
		return &BinOp{
			Source: src,
			Op:     l.text(n.ChildByFieldName("operator")),
			Left:   l.expr(n.ChildByFieldName("left")),
			Right:  l.expr(n.ChildByFieldName("right")),
		}

	case "string":
		if isFormatString(src.Src) {
			return &OtherExpr{Source: src, Kind: "fstring"}
		}
		return &Constant{Source: src}

	case "concatenated_string", "integer", "float", "true", "false", "none", "ellipsis":
		return &Constant{Source: src}

	case "call":
		return &Call{Source: src, Func: l.expr(n.ChildByFieldName("function"))}

	case "parenthesized_expression":
		if inner := namedChildren(n); len(inner) == 1 {
			return l.expr(inner[0])
		}
	}
	return &OtherExpr{Source: src, Kind: n.Kind()}
}

func isFormatString(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 'f', 'F':
			return true
		case 'r', 'R', 'b', 'B', 'u', 'U':
			continue
		}
		return false
	}
	return false
}
