package mcptools

import "github.com/dusk-indust/archpy/internal/docstring"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ExtractPythonInput is the input for the extract_python MCP tool.
type ExtractPythonInput struct {
	Paths []string `json:"paths" jsonschema:"paths of the Python files to extract, results keep this order"`
}

// ParseDocstringInput is the input for the parse_docstring MCP tool.
type ParseDocstringInput struct {
	Docstring string `json:"docstring" jsonschema:"the docstring text without surrounding quotes"`
}

// ParseDocstringOutput is the result of the parse_docstring MCP tool.
type ParseDocstringOutput struct {
	Style string             `json:"style"`
	Doc   docstring.DocModel `json:"doc"`
}
