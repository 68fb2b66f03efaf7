// Package pyast is a small, closed syntax tree for Python modules.
//
// Only the statement and expression shapes the extractors care about are
// modelled; everything else collapses into OtherStmt or OtherExpr carrying
// its source text. Trees are built from tree-sitter parses by Parser and are
// never mutated afterwards.
package pyast

// Module is the root of a parsed source unit.
type Module struct {
	// Doc is the cleaned module docstring, empty when absent.
	Doc  string
	Body []Stmt
}

// Stmt is a top-level or class-body statement. The set of implementations
// is closed: ClassDef, FunctionDef, Assign, AnnAssign, TypeAliasStmt,
// Import, ImportFrom, ExprStmt and OtherStmt.
type Stmt interface {
	// Line is the 1-based line the statement starts on.
	Line() int
	stmt()
}

// Expr is an expression node. The set of implementations is closed: Name,
// Attribute, Subscript, BinOp, Constant, Call and OtherExpr. Every
// expression keeps its verbatim source text.
type Expr interface {
	Text() string
	expr()
}

// Pos carries the start line of a statement.
type Pos struct {
	StartLine int
}

func (p Pos) Line() int { return p.StartLine }

// ClassDef is a class statement, decorated or not.
type ClassDef struct {
	Pos
	Name       string
	Bases      []Expr
	Decorators []Expr
	Doc        string
	Body       []Stmt
}

// FunctionDef is a def or async def statement, decorated or not.
type FunctionDef struct {
	Pos
	Name       string
	Async      bool
	Decorators []Expr
	Params     []Param
	// Returns is the return annotation text, empty when absent.
	Returns string
	Doc     string
}

// ParamKind distinguishes how a parameter binds arguments.
type ParamKind int

const (
	ParamPositional ParamKind = iota
	ParamVarPositional
	ParamKeywordOnly
	ParamVarKeyword
)

// Param is one declared parameter. Bare "*" and "/" separators are not
// represented.
type Param struct {
	Name       string
	Kind       ParamKind
	Annotation string
	Default    string
	// PositionalOnly is set for parameters declared before "/".
	PositionalOnly bool
}

// Assign is a plain assignment. Chained assignments (a = b = v) list every
// target in order.
type Assign struct {
	Pos
	Targets []Expr
	Value   Expr
}

// AnnAssign is an annotated assignment; Value is nil for bare declarations.
type AnnAssign struct {
	Pos
	Target     Expr
	Annotation string
	Value      Expr
}

// TypeAliasStmt is a "type X = ..." statement.
type TypeAliasStmt struct {
	Pos
	Name  string
	Value string
}

// Alias is an imported name with its optional "as" binding.
type Alias struct {
	Name   string
	AsName string
}

// Bound returns the name the import binds in the importing module.
func (a Alias) Bound() string {
	if a.AsName != "" {
		return a.AsName
	}
	return a.Name
}

// Import is "import a.b as c, d".
type Import struct {
	Pos
	Names []Alias
}

// ImportFrom is "from .m import a, b as c". Module is empty for "from .
// import x"; Level counts the leading dots.
type ImportFrom struct {
	Pos
	Module string
	Level  int
	Names  []Alias
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Pos
	Value Expr
}

// OtherStmt is any statement kind not modelled above.
type OtherStmt struct {
	Pos
	Kind string
}

func (*ClassDef) stmt()      {}
func (*FunctionDef) stmt()   {}
func (*Assign) stmt()        {}
func (*AnnAssign) stmt()     {}
func (*TypeAliasStmt) stmt() {}
func (*Import) stmt()        {}
func (*ImportFrom) stmt()    {}
func (*ExprStmt) stmt()      {}
func (*OtherStmt) stmt()     {}

// Source is the verbatim text shared by every expression kind.
type Source struct {
	Src string
}

func (s Source) Text() string { return s.Src }

// Name is a bare identifier.
type Name struct {
	Source
	ID string
}

// Attribute is a dotted access such as typing.Optional.
type Attribute struct {
	Source
	Value Expr
	Attr  string
}

// Subscript is an indexing expression such as List[str].
type Subscript struct {
	Source
	Value Expr
}

// BinOp is a binary operator expression; Op is the operator token.
type BinOp struct {
	Source
	Op          string
	Left, Right Expr
}

// Constant is a literal: string, number, True, False, None or "...".
type Constant struct {
	Source
}

// Call is a call expression.
type Call struct {
	Source
	Func Expr
}

// OtherExpr is any expression kind not modelled above; Kind is the
// tree-sitter node kind.
type OtherExpr struct {
	Source
	Kind string
}

func (*Name) expr()      {}
func (*Attribute) expr() {}
func (*Subscript) expr() {}
func (*BinOp) expr()     {}
func (*Constant) expr()  {}
func (*Call) expr()      {}
func (*OtherExpr) expr() {}
