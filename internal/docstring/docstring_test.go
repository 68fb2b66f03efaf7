package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Style
	}{
		{"google args", "Do it.\n\nArgs:\n    x: value\n", StyleGoogle},
		{"google returns only", "Do it.\n\nReturns:\n    int: count", StyleGoogle},
		{"numpy", "Do it.\n\nParameters\n----------\nx : int\n    The value", StyleNumPy},
		{"numpy see also", "Do it.\n\nSee Also\n--------\nother", StyleNumPy},
		{"sphinx", "Do it.\n\n:param x: the value\n:rtype: int", StyleSphinx},
		{"sphinx raises", "Do it.\n:raises ValueError: bad", StyleSphinx},
		{"sphinx typed param only", "Do it.\n\n:param int x: the x", StyleSphinx},
		{"double colon header", "Do it.\n\nArgs::\n    x: value\n", StyleSimple},
		{"simple", "Just a sentence.\nAnd another.", StyleSimple},
		{"header without newline", "Args: inline text", StyleSimple},
		{"google beats sphinx", "Do it.\n\nArgs:\n    x: value\n\n:param x: value", StyleGoogle},
		{"google beats numpy", "Do it.\n\nReturns:\n    int\n\nReturns\n-------\nint", StyleGoogle},
		{"numpy beats sphinx", "Do it.\n\nParameters\n----------\nx : int\n\n:param x: value", StyleNumPy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.doc))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, doc := range []string{"", "   \n  "} {
		got := Parse(doc)
		assert.Nil(t, got.Summary)
		assert.Nil(t, got.Description)
		assert.Nil(t, got.Returns)
		assert.Nil(t, got.Examples)
		assert.NotNil(t, got.Args)
		assert.Empty(t, got.Args)
		assert.NotNil(t, got.Raises)
		assert.Empty(t, got.Raises)
	}
}

func TestParse_Google(t *testing.T) {
	doc := `Validate payment request before processing.

Performs validation checks on the payment
request.

Args:
    request (PaymentRequest): The payment request to validate
        and normalise.
    strict: Fail on warnings
    *extra: Ignored

Returns:
    bool: True if payment is valid, False otherwise

Raises:
    ValueError: If request is None
        or invalid
    errors.PaymentError: If the gateway refuses

Example:
    >>> validate(req)
    True`

	got := Parse(doc)
	assert.Equal(t, str("Validate payment request before processing."), got.Summary)
	assert.Equal(t, str("Performs validation checks on the payment request."), got.Description)

	assert.Equal(t, []ArgDoc{
		{Name: "request", Type: str("PaymentRequest"), Description: "The payment request to validate and normalise."},
		{Name: "strict", Description: "Fail on warnings"},
		{Name: "*extra", Description: "Ignored"},
	}, got.Args)

	require.NotNil(t, got.Returns)
	assert.Equal(t, str("bool"), got.Returns.Type)
	assert.Equal(t, str("True if payment is valid, False otherwise"), got.Returns.Description)

	assert.Equal(t, []RaisesDoc{
		{Type: "ValueError", Description: "If request is None or invalid"},
		{Type: "errors.PaymentError", Description: "If the gateway refuses"},
	}, got.Raises)

	assert.Equal(t, str(">>> validate(req)\nTrue"), got.Examples)
}

func TestParseGoogleReturns(t *testing.T) {
	tests := []struct {
		body     string
		wantType *string
		wantDesc *string
	}{
		{"bool: True if valid", str("bool"), str("True if valid")},
		{"List[str]: the names", str("List[str]"), str("the names")},
		{"Payment result with transaction ID", nil, str("Payment result with transaction ID")},
		{"Sum of a and b: always positive", nil, str("Sum of a and b: always positive")},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got := parseGoogleReturns(tt.body)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantDesc, got.Description)
		})
	}
}

func TestParse_GoogleYieldsAndArgumentsSynonyms(t *testing.T) {
	got := Parse("Stream rows.\n\nArguments:\n    limit (int): Max rows\n\nYields:\n    Row: the next row")
	assert.Equal(t, []ArgDoc{{Name: "limit", Type: str("int"), Description: "Max rows"}}, got.Args)
	require.NotNil(t, got.Returns)
	assert.Equal(t, str("Row"), got.Returns.Type)
}

func TestParse_GoogleRepeatedSectionOverwrites(t *testing.T) {
	got := Parse("Summary.\n\nArgs:\n    a: first\n\nArgs:\n    b: second")
	assert.Equal(t, []ArgDoc{{Name: "b", Description: "second"}}, got.Args)
}

func TestParse_GoogleSummaryOnly(t *testing.T) {
	got := Parse("Summary line\ncontinues here.\nReturns:\n    int: n")
	assert.Equal(t, str("Summary line continues here."), got.Summary)
	assert.Nil(t, got.Description)
}

func TestParseNumPyParams(t *testing.T) {
	got := parseNumPyParams("x : int\n    The value\ny : str\n    The name")
	assert.Equal(t, []ArgDoc{
		{Name: "x", Type: str("int"), Description: "The value"},
		{Name: "y", Type: str("str"), Description: "The name"},
	}, got)
}

func TestParse_NumPy(t *testing.T) {
	doc := `Compute the weighted mean.

Uses the given weights.

Parameters
----------
values : array_like
    Input values.
weights
    Optional weights,
    same shape as values.

Returns
-------
float
    The weighted
    mean.

Raises
------
ValueError
    If shapes differ.

Examples
--------
>>> mean([1, 2])
1.5`

	got := Parse(doc)
	assert.Equal(t, str("Compute the weighted mean."), got.Summary)
	assert.Equal(t, str("Uses the given weights."), got.Description)
	assert.Equal(t, []ArgDoc{
		{Name: "values", Type: str("array_like"), Description: "Input values."},
		{Name: "weights", Description: "Optional weights, same shape as values."},
	}, got.Args)
	require.NotNil(t, got.Returns)
	assert.Equal(t, str("float"), got.Returns.Type)
	assert.Equal(t, str("The weighted mean."), got.Returns.Description)
	assert.Equal(t, []RaisesDoc{{Type: "ValueError", Description: "If shapes differ."}}, got.Raises)
	assert.Equal(t, str(">>> mean([1, 2])\n1.5"), got.Examples)
}

func TestParse_Sphinx(t *testing.T) {
	doc := `Send a receipt.

Looks up the customer first.

:type email: str
:param email: Customer address
    used for delivery
:param int retries: Attempts
:returns: Whether it was sent
:rtype: bool
:raises IOError: On transport failure
:raise ValueError: On bad input`

	got := Parse(doc)
	assert.Equal(t, str("Send a receipt."), got.Summary)
	assert.Equal(t, str("Looks up the customer first."), got.Description)
	assert.Equal(t, []ArgDoc{
		{Name: "email", Type: str("str"), Description: "Customer address used for delivery"},
		{Name: "retries", Type: str("int"), Description: "Attempts"},
	}, got.Args)
	require.NotNil(t, got.Returns)
	assert.Equal(t, str("bool"), got.Returns.Type)
	assert.Equal(t, str("Whether it was sent"), got.Returns.Description)
	assert.Equal(t, []RaisesDoc{
		{Type: "IOError", Description: "On transport failure"},
		{Type: "ValueError", Description: "On bad input"},
	}, got.Raises)
	assert.Nil(t, got.Examples)
}

func TestParse_SphinxTypeAfterParam(t *testing.T) {
	got := Parse("Do it.\n:param x: the value\n:type x: int\n:param x: updated")
	assert.Equal(t, []ArgDoc{{Name: "x", Type: str("int"), Description: "updated"}}, got.Args)
}

func TestParse_SphinxTypedParamOnly(t *testing.T) {
	got := Parse(":param int x: the x")
	require.Len(t, got.Args, 1)
	assert.Equal(t, "x", got.Args[0].Name)
	require.NotNil(t, got.Args[0].Type)
	assert.Equal(t, "int", *got.Args[0].Type)
	assert.Equal(t, "the x", got.Args[0].Description)
	assert.Nil(t, got.Description)
}

func TestGoogleHeaderAt_DoubleColon(t *testing.T) {
	name, n := googleHeaderAt([]string{"Args::"}, 0)
	assert.Empty(t, name)
	assert.Zero(t, n)

	name, n = googleHeaderAt([]string{"  Args:"}, 0)
	assert.Equal(t, "Args", name)
	assert.Equal(t, 1, n)
}

func TestParse_Simple(t *testing.T) {
	got := Parse("Payment module.\n\n@module Payments\nHandles cards\nand refunds.\n@uses Database stores")
	assert.Equal(t, str("Payment module."), got.Summary)
	assert.Equal(t, str("Handles cards and refunds."), got.Description)
	assert.Empty(t, got.Args)
	assert.Nil(t, got.Returns)
	assert.Empty(t, got.Raises)
	assert.Nil(t, got.Examples)
}

func TestSectionBody(t *testing.T) {
	body := sectionBody([]string{"", "    a: one", "        more", "    b: two", ""})
	assert.Equal(t, "a: one\n    more\nb: two", body)
}
