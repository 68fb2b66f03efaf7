package extract

import (
	"encoding/json"

	"github.com/dusk-indust/archpy/internal/annotation"
	"github.com/dusk-indust/archpy/internal/docstring"
)

// --- Enums ---

// PropertyKind distinguishes accessor-backed properties from annotated
// class variables.
type PropertyKind string

const (
	PropertyKindProperty      PropertyKind = "property"
	PropertyKindClassVariable PropertyKind = "class_variable"
)

// TypeCategory classifies a detected type definition.
type TypeCategory string

const (
	TypeCategoryAlias     TypeCategory = "TypeAlias"
	TypeCategoryTypedDict TypeCategory = "TypedDict"
	TypeCategoryProtocol  TypeCategory = "Protocol"
	TypeCategoryEnum      TypeCategory = "Enum"
	TypeCategoryNewType   TypeCategory = "NewType"
)

// --- Models ---

// SourceFile is the extraction result for one Python file. Every list is
// non-nil so it marshals as an array. ParseError is set when the file could
// not be extracted; the lists are then empty.
type SourceFile struct {
	FilePath      string                    `json:"filePath"`
	Component     *annotation.Component     `json:"component"`
	Actors        []annotation.Actor        `json:"actors"`
	Relationships []annotation.Relationship `json:"relationships"`
	Classes       []ClassEntity             `json:"classes"`
	Functions     []FunctionEntity          `json:"functions"`
	Types         []TypeEntity              `json:"types"`
	Imports       []ImportEntity            `json:"imports"`
	ParseError    string                    `json:"parseError,omitempty"`
}

// ClassEntity is a top-level class.
type ClassEntity struct {
	Name        string             `json:"name"`
	BaseClasses []string           `json:"baseClasses"`
	Decorators  []string           `json:"decorators"`
	Line        int                `json:"line"`
	Docstring   *string            `json:"docstring"`
	ParsedDoc   docstring.DocModel `json:"parsedDoc"`
	Methods     []MethodEntity     `json:"methods"`
	Properties  []PropertyEntity   `json:"properties"`
}

// MethodEntity is a function defined in a class body.
type MethodEntity struct {
	Name             string             `json:"name"`
	IsStatic         bool               `json:"isStatic"`
	IsAsync          bool               `json:"isAsync"`
	IsClassMethod    bool               `json:"isClassMethod"`
	IsAbstract       bool               `json:"isAbstract"`
	Decorators       []string           `json:"decorators"`
	Line             int                `json:"line"`
	Docstring        *string            `json:"docstring"`
	ParsedDoc        docstring.DocModel `json:"parsedDoc"`
	Parameters       []ParameterEntity  `json:"parameters"`
	ReturnAnnotation *string            `json:"returnAnnotation"`
}

// FunctionEntity is a top-level function.
type FunctionEntity struct {
	Name             string             `json:"name"`
	IsAsync          bool               `json:"isAsync"`
	Decorators       []string           `json:"decorators"`
	Line             int                `json:"line"`
	Docstring        *string            `json:"docstring"`
	ParsedDoc        docstring.DocModel `json:"parsedDoc"`
	Parameters       []ParameterEntity  `json:"parameters"`
	ReturnAnnotation *string            `json:"returnAnnotation"`
}

// ParameterEntity is one declared parameter. Collectors carry their "*" or
// "**" prefix in Name; Default is verbatim source text.
type ParameterEntity struct {
	Name       string  `json:"name"`
	Annotation *string `json:"annotation"`
	Default    *string `json:"default"`
}

// PropertyEntity is a property accessor group or an annotated class
// variable.
type PropertyEntity struct {
	Name       string       `json:"name"`
	Type       PropertyKind `json:"type"`
	Annotation *string      `json:"annotation"`
	Default    *string      `json:"default"`
	Line       int          `json:"line"`
	Docstring  *string      `json:"docstring"`
	HasGetter  bool         `json:"hasGetter"`
	HasSetter  bool         `json:"hasSetter"`
	HasDeleter bool         `json:"hasDeleter"`
}

// IsReadonly reports whether the property can be read but not assigned.
func (p PropertyEntity) IsReadonly() bool {
	return p.HasGetter && !p.HasSetter
}

// MarshalJSON adds the derived isReadonly field.
func (p PropertyEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string       `json:"name"`
		Type       PropertyKind `json:"type"`
		Annotation *string      `json:"annotation"`
		Default    *string      `json:"default"`
		Line       int          `json:"line"`
		Docstring  *string      `json:"docstring"`
		IsReadonly bool         `json:"isReadonly"`
		HasGetter  bool         `json:"hasGetter"`
		HasSetter  bool         `json:"hasSetter"`
		HasDeleter bool         `json:"hasDeleter"`
	}{
		Name:       p.Name,
		Type:       p.Type,
		Annotation: p.Annotation,
		Default:    p.Default,
		Line:       p.Line,
		Docstring:  p.Docstring,
		IsReadonly: p.IsReadonly(),
		HasGetter:  p.HasGetter,
		HasSetter:  p.HasSetter,
		HasDeleter: p.HasDeleter,
	})
}

// TypeEntity is a type definition found among top-level statements.
type TypeEntity struct {
	Name       string       `json:"name"`
	Category   TypeCategory `json:"category"`
	Line       int          `json:"line"`
	Definition *string      `json:"definition"`
	Docstring  *string      `json:"docstring"`
}

// ImportEntity is one import. "import a, b" yields one entity per module;
// "from m import a, b" yields one entity listing both names.
type ImportEntity struct {
	Source     string   `json:"source"`
	Names      []string `json:"names"`
	IsRelative bool     `json:"isRelative"`
	Level      int      `json:"level"`
}

// Failed returns the record for a file that could not be extracted.
func Failed(path string, err error) SourceFile {
	f := newSourceFile(path)
	f.ParseError = err.Error()
	return f
}

func newSourceFile(path string) SourceFile {
	return SourceFile{
		FilePath:      path,
		Actors:        []annotation.Actor{},
		Relationships: []annotation.Relationship{},
		Classes:       []ClassEntity{},
		Functions:     []FunctionEntity{},
		Types:         []TypeEntity{},
		Imports:       []ImportEntity{},
	}
}
