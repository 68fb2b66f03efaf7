package mcptools

import (
	"bytes"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gitlab.com/tozd/go/errors"

	"github.com/dusk-indust/archpy/internal/batch"
	"github.com/dusk-indust/archpy/internal/docstring"
	"github.com/dusk-indust/archpy/internal/report"
)

// ExtractService holds the batch runner used by MCP tool handlers.
type ExtractService struct {
	runner *batch.Runner
}

// NewExtractService creates an ExtractService extracting through runner.
func NewExtractService(runner *batch.Runner) *ExtractService {
	return &ExtractService{runner: runner}
}

// ExtractPython extracts the requested files and returns the same
// {"files": [...]} document the command line prints, as text content.
// Per-file failures are reported inside the document, not as tool errors.
func (s *ExtractService) ExtractPython(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractPythonInput,
) (*mcp.CallToolResult, any, error) {
	if len(input.Paths) == 0 {
		return nil, nil, report.ErrNoPaths
	}

	files := s.runner.Run(ctx, input.Paths)

	var buf bytes.Buffer
	if err := report.Write(&buf, files); err != nil {
		return nil, nil, errors.Errorf("render report: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, nil, nil
}

// ParseDocstring classifies a docstring and returns its structured form.
func (s *ExtractService) ParseDocstring(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseDocstringInput,
) (*mcp.CallToolResult, ParseDocstringOutput, error) {
	style := docstring.Classify(input.Docstring)
	return nil, ParseDocstringOutput{
		Style: string(style),
		Doc:   docstring.Parse(input.Docstring),
	}, nil
}
