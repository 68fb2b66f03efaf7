package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dusk-indust/archpy/internal/pyast"
)

// typeRule inspects one top-level statement and reports a type definition
// when the statement matches.
type typeRule func(pyast.Stmt) (TypeEntity, bool)

// typeRules is applied in order to each top-level statement; the first
// match wins.
var typeRules = []typeRule{
	annotatedAlias,
	aliasStatement,
	implicitAlias,
	typedDict,
	protocol,
	enumeration,
	newType,
}

func classifyType(stmt pyast.Stmt) (TypeEntity, bool) {
	for _, rule := range typeRules {
		if t, ok := rule(stmt); ok {
			return t, true
		}
	}
	return TypeEntity{}, false
}

// isMarker matches a typing marker bare or module qualified
// (typing.TypedDict).
func isMarker(text, name string) bool {
	return text == name || strings.HasSuffix(text, "."+name)
}

// isTypeShaped reports whether e could plausibly denote a type.
func isTypeShaped(e pyast.Expr) bool {
	switch v := e.(type) {
	case *pyast.Name, *pyast.Constant, *pyast.Subscript, *pyast.Attribute:
		return true
	case *pyast.BinOp:
		return v.Op == "|"
	}
	return false
}

// singleName returns the target of an assignment to exactly one bare name.
func singleName(a *pyast.Assign) (string, bool) {
	if len(a.Targets) != 1 {
		return "", false
	}
	n, ok := a.Targets[0].(*pyast.Name)
	if !ok {
		return "", false
	}
	return n.ID, true
}

// UserId: TypeAlias = str
func annotatedAlias(stmt pyast.Stmt) (TypeEntity, bool) {
	a, ok := stmt.(*pyast.AnnAssign)
	if !ok || !isMarker(a.Annotation, "TypeAlias") {
		return TypeEntity{}, false
	}
	target, ok := a.Target.(*pyast.Name)
	if !ok {
		return TypeEntity{}, false
	}
	var def *string
	if a.Value != nil {
		def = optional(a.Value.Text())
	}
	return TypeEntity{Name: target.ID, Category: TypeCategoryAlias, Line: a.Line(), Definition: def}, true
}

// type UserId = str
func aliasStatement(stmt pyast.Stmt) (TypeEntity, bool) {
	a, ok := stmt.(*pyast.TypeAliasStmt)
	if !ok {
		return TypeEntity{}, false
	}
	return TypeEntity{Name: a.Name, Category: TypeCategoryAlias, Line: a.Line(), Definition: optional(a.Value)}, true
}

// UserId = str
func implicitAlias(stmt pyast.Stmt) (TypeEntity, bool) {
	a, ok := stmt.(*pyast.Assign)
	if !ok {
		return TypeEntity{}, false
	}
	name, ok := singleName(a)
	if !ok || !startsUpper(name) || !isTypeShaped(a.Value) {
		return TypeEntity{}, false
	}
	return TypeEntity{Name: name, Category: TypeCategoryAlias, Line: a.Line(), Definition: optional(a.Value.Text())}, true
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func typedDict(stmt pyast.Stmt) (TypeEntity, bool) {
	c, ok := stmt.(*pyast.ClassDef)
	if !ok || !hasBase(c, func(b string) bool { return isMarker(b, "TypedDict") }) {
		return TypeEntity{}, false
	}
	var fields []string
	for _, s := range c.Body {
		a, ok := s.(*pyast.AnnAssign)
		if !ok {
			continue
		}
		if n, ok := a.Target.(*pyast.Name); ok {
			fields = append(fields, n.ID+": "+a.Annotation)
		}
	}
	return classType(c, TypeCategoryTypedDict, fields), true
}

// protocol matches any base whose text mentions Protocol, which includes
// generic forms such as Protocol[T].
func protocol(stmt pyast.Stmt) (TypeEntity, bool) {
	c, ok := stmt.(*pyast.ClassDef)
	if !ok || !hasBase(c, func(b string) bool { return strings.Contains(b, "Protocol") }) {
		return TypeEntity{}, false
	}
	var sigs []string
	for _, s := range c.Body {
		if fn, ok := s.(*pyast.FunctionDef); ok {
			sigs = append(sigs, signature(fn))
		}
	}
	return classType(c, TypeCategoryProtocol, sigs), true
}

// signature renders "name(a: int, b) -> ret" from the positional
// parameters, leaving out self.
func signature(fn *pyast.FunctionDef) string {
	var b strings.Builder
	if fn.Async {
		b.WriteString("async ")
	}
	b.WriteString(fn.Name)
	b.WriteByte('(')
	first := true
	for _, p := range fn.Params {
		if p.Kind != pyast.ParamPositional || p.Name == "self" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.Name)
		if p.Annotation != "" {
			b.WriteString(": " + p.Annotation)
		}
	}
	b.WriteByte(')')
	if fn.Returns != "" {
		b.WriteString(" -> " + fn.Returns)
	}
	return b.String()
}

func enumeration(stmt pyast.Stmt) (TypeEntity, bool) {
	c, ok := stmt.(*pyast.ClassDef)
	if !ok {
		return TypeEntity{}, false
	}
	isEnum := func(b string) bool {
		return isMarker(b, "Enum") || isMarker(b, "IntEnum") || isMarker(b, "StrEnum")
	}
	if !hasBase(c, isEnum) {
		return TypeEntity{}, false
	}
	var members []string
	for _, s := range c.Body {
		a, ok := s.(*pyast.Assign)
		if !ok {
			continue
		}
		for _, t := range a.Targets {
			if n, ok := t.(*pyast.Name); ok {
				members = append(members, n.ID)
			}
		}
	}
	return classType(c, TypeCategoryEnum, members), true
}

// UserId = NewType("UserId", int)
func newType(stmt pyast.Stmt) (TypeEntity, bool) {
	a, ok := stmt.(*pyast.Assign)
	if !ok {
		return TypeEntity{}, false
	}
	name, ok := singleName(a)
	if !ok {
		return TypeEntity{}, false
	}
	call, ok := a.Value.(*pyast.Call)
	if !ok || call.Func == nil || !isMarker(call.Func.Text(), "NewType") {
		return TypeEntity{}, false
	}
	return TypeEntity{Name: name, Category: TypeCategoryNewType, Line: a.Line(), Definition: optional(call.Text())}, true
}

func hasBase(c *pyast.ClassDef, match func(string) bool) bool {
	for _, b := range c.Bases {
		if match(b.Text()) {
			return true
		}
	}
	return false
}

func classType(c *pyast.ClassDef, category TypeCategory, parts []string) TypeEntity {
	def := "{" + strings.Join(parts, ", ") + "}"
	return TypeEntity{
		Name:       c.Name,
		Category:   category,
		Line:       c.Line(),
		Definition: &def,
		Docstring:  optional(c.Doc),
	}
}
