package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TypeDefinitions(t *testing.T) {
	f := extractFixture(t, "type_definitions.py")

	tests := []struct {
		name       string
		category   TypeCategory
		line       int
		definition string
	}{
		{"UserId", TypeCategoryNewType, 7, `NewType("UserId", int)`},
		{"Email", TypeCategoryAlias, 8, "str"},
		{"Tags", TypeCategoryAlias, 9, "list[str] | None"},
		{"MAX_RETRIES", TypeCategoryAlias, 10, "3"},
		{"Callback", TypeCategoryAlias, 12, "typing.Callable[[int], None]"},
		{"Address", TypeCategoryTypedDict, 16, "{street: str, city: str}"},
		{"Store", TypeCategoryProtocol, 23, "{get(key: str) -> bytes, async put(key: str, value: bytes) -> None}"},
		{"Color", TypeCategoryEnum, 29, "{RED, GREEN}"},
		{"Level", TypeCategoryEnum, 34, "{LOW, HIGH}"},
		{"Pair", TypeCategoryAlias, 43, "tuple[int, int]"},
	}

	var names []string
	for _, typ := range f.Types {
		names = append(names, typ.Name)
	}
	var want []string
	for _, tt := range tests {
		want = append(want, tt.name)
	}
	require.Equal(t, want, names, "declaration order; lowercase, call and plain class statements are not types")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := findType(f.Types, tt.name)
			require.NotNil(t, typ)
			assert.Equal(t, tt.category, typ.Category)
			assert.Equal(t, tt.line, typ.Line)
			require.NotNil(t, typ.Definition)
			assert.Equal(t, tt.definition, *typ.Definition)
		})
	}

	address := findType(f.Types, "Address")
	require.NotNil(t, address)
	assert.Equal(t, str("A postal address."), address.Docstring)
	assert.Nil(t, findType(f.Types, "UserId").Docstring)
}

func TestClassifyType_Rules(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		category TypeCategory
		matched  bool
	}{
		{"qualified TypeAlias", "import typing\nX: typing.TypeAlias = int\n", TypeCategoryAlias, true},
		{"bare TypeAlias declaration", "X: TypeAlias\n", TypeCategoryAlias, true},
		{"attribute value", "Path = os.PathLike\n", TypeCategoryAlias, true},
		{"non pipe binop", "Total = A + B\n", "", false},
		{"chained assignment", "A = B = int\n", "", false},
		{"qualified NewType", "Id = typing.NewType('Id', int)\n", TypeCategoryNewType, true},
		{"qualified TypedDict", "class P(typing.TypedDict):\n    x: int\n", TypeCategoryTypedDict, true},
		{"generic Protocol", "class S(Protocol[T]):\n    pass\n", TypeCategoryProtocol, true},
		{"qualified StrEnum", "class C(enum.StrEnum):\n    A = 'a'\n", TypeCategoryEnum, true},
		{"TypedDict wins over Protocol", "class D(TypedDict, Protocol):\n    pass\n", TypeCategoryTypedDict, true},
		{"non type class", "class Service(Base):\n    pass\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extractSource(t, tt.src)
			if !tt.matched {
				assert.Empty(t, f.Types)
				return
			}
			require.NotEmpty(t, f.Types)
			assert.Equal(t, tt.category, f.Types[len(f.Types)-1].Category)
		})
	}
}

func TestClassifyType_EmptyBodies(t *testing.T) {
	f := extractSource(t, "class Empty(Enum):\n    pass\n\nX: TypeAlias\n")
	require.Len(t, f.Types, 2)
	assert.Equal(t, str("{}"), f.Types[0].Definition)
	assert.Nil(t, f.Types[1].Definition)
}
