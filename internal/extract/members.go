package extract

import (
	"strings"

	"github.com/dusk-indust/archpy/internal/docstring"
	"github.com/dusk-indust/archpy/internal/pyast"
)

const (
	decoratorProperty    = "property"
	decoratorStatic      = "staticmethod"
	decoratorClassMethod = "classmethod"
	decoratorAbstract    = "abstractmethod"
)

// hasDecorator matches name bare or module qualified (abc.abstractmethod).
func hasDecorator(decorators []string, name string) bool {
	for _, d := range decorators {
		if d == name || strings.HasSuffix(d, "."+name) {
			return true
		}
	}
	return false
}

// methods lists every function in the class body, property accessors
// included, in declaration order.
func methods(c *pyast.ClassDef) []MethodEntity {
	out := []MethodEntity{}
	for _, stmt := range c.Body {
		fn, ok := stmt.(*pyast.FunctionDef)
		if !ok {
			continue
		}
		decorators := decoratorNames(fn.Decorators)
		static := hasDecorator(decorators, decoratorStatic)
		out = append(out, MethodEntity{
			Name:             fn.Name,
			IsStatic:         static,
			IsAsync:          fn.Async,
			IsClassMethod:    hasDecorator(decorators, decoratorClassMethod),
			IsAbstract:       hasDecorator(decorators, decoratorAbstract),
			Decorators:       decorators,
			Line:             fn.Line(),
			Docstring:        optional(fn.Doc),
			ParsedDoc:        docstring.Parse(fn.Doc),
			Parameters:       parameters(fn.Params, !static),
			ReturnAnnotation: optional(fn.Returns),
		})
	}
	return out
}

// parameters converts declared parameters. When bound is set the leading
// positional parameter (self or cls) is dropped.
func parameters(params []pyast.Param, bound bool) []ParameterEntity {
	if bound && len(params) > 0 && params[0].Kind == pyast.ParamPositional {
		params = params[1:]
	}
	out := make([]ParameterEntity, 0, len(params))
	for _, p := range params {
		name := p.Name
		switch p.Kind {
		case pyast.ParamVarPositional:
			name = "*" + name
		case pyast.ParamVarKeyword:
			name = "**" + name
		}
		out = append(out, ParameterEntity{
			Name:       name,
			Annotation: optional(p.Annotation),
			Default:    optional(p.Default),
		})
	}
	return out
}

// properties merges @property getters with their x.setter and x.deleter
// accessors, then adds annotated class variables whose name no property
// claims. Groups are ordered by their getter.
func properties(c *pyast.ClassDef) []PropertyEntity {
	var order []string
	groups := make(map[string]*PropertyEntity)

	for _, stmt := range c.Body {
		fn, ok := stmt.(*pyast.FunctionDef)
		if !ok {
			continue
		}
		decorators := decoratorNames(fn.Decorators)
		for _, d := range decorators {
			if d == decoratorProperty {
				if _, seen := groups[fn.Name]; !seen {
					order = append(order, fn.Name)
				}
				groups[fn.Name] = &PropertyEntity{
					Name:       fn.Name,
					Type:       PropertyKindProperty,
					Annotation: optional(fn.Returns),
					Line:       fn.Line(),
					Docstring:  optional(fn.Doc),
					HasGetter:  true,
				}
				continue
			}
			if name, ok := strings.CutSuffix(d, ".setter"); ok {
				if g := groups[name]; g != nil {
					g.HasSetter = true
				}
			}
			if name, ok := strings.CutSuffix(d, ".deleter"); ok {
				if g := groups[name]; g != nil {
					g.HasDeleter = true
				}
			}
		}
	}

	out := make([]PropertyEntity, 0, len(order))
	for _, name := range order {
		out = append(out, *groups[name])
	}

	for _, stmt := range c.Body {
		assign, ok := stmt.(*pyast.AnnAssign)
		if !ok {
			continue
		}
		target, ok := assign.Target.(*pyast.Name)
		if !ok || groups[target.ID] != nil {
			continue
		}
		var def *string
		if assign.Value != nil {
			def = optional(assign.Value.Text())
		}
		out = append(out, PropertyEntity{
			Name:       target.ID,
			Type:       PropertyKindClassVariable,
			Annotation: optional(assign.Annotation),
			Default:    def,
			Line:       assign.Line(),
		})
	}
	return out
}
