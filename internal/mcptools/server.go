package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// StdioAddr selects the stdio transport in place of an HTTP address.
const StdioAddr = "stdio"

// version is set by the linker at build time.
var version = "dev"

// NewExtractMCPServer creates an MCP server with the extract_python and
// parse_docstring tools registered.
func NewExtractMCPServer(svc *ExtractService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "archpy",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_python",
		Description: "Extract architecture metadata from Python files: @module/@actor/@uses tags, classes, functions, type definitions, imports and parsed docstrings. Returns one record per path, in order; unparsable files carry a parseError.",
	}, svc.ExtractPython)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_docstring",
		Description: "Classify a Python docstring as google, numpy, sphinx or simple and return its summary, description, args, returns, raises and examples.",
	}, svc.ParseDocstring)

	return server
}

// Serve runs server on stdio when addr is StdioAddr, otherwise over
// streamable HTTP on addr. It blocks until ctx is cancelled or the
// transport closes.
func Serve(ctx context.Context, server *mcp.Server, addr string) error {
	if addr == StdioAddr {
		return server.Run(ctx, &mcp.StdioTransport{})
	}

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			slogctx.Warn(ctx, "mcp http shutdown", "error", err)
		}
	}()

	slogctx.Info(ctx, "serving mcp", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Errorf("serve mcp on %s: %w", addr, err)
	}
	return nil
}
