package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/dusk-indust/archpy/internal/batch"
	"github.com/dusk-indust/archpy/internal/config"
	"github.com/dusk-indust/archpy/internal/logging"
	"github.com/dusk-indust/archpy/internal/mcptools"
	"github.com/dusk-indust/archpy/internal/report"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Workers   int
	Verbose   bool
	ServeMCP  string
}

// version is set by goreleaser at build time.
var version = "dev"

var errServeWithPaths = errors.Base("--serve-mcp cannot be combined with file paths")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, report.ErrNoPaths) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(afero.NewOsFs(), stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "archpy [flags] <file.py>...",
		Short: "Extract architecture metadata from Python source files",
		Long: `archpy reads Python files and prints one JSON record per file describing
its @module/@actor/@uses tags, classes, functions, type definitions and
imports, with every docstring parsed into a structured form.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractFiles(cmd, fs, flags, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().StringVar(&flags.ConfigDir, "config", ".", "directory containing archpy.yml")
	cmd.Flags().IntVar(&flags.Workers, "workers", 0, "max files parsed in parallel (0 = config or GOMAXPROCS)")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "debug logging to stderr")
	cmd.Flags().StringVar(&flags.ServeMCP, "serve-mcp", "", `serve the MCP tools instead of extracting; "stdio" or host:port`)

	return cmd
}

func extractFiles(cmd *cobra.Command, fs afero.Fs, flags cliFlags, paths []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(fs, flags.ConfigDir)
	if err != nil {
		return errors.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if cmd.Flags().Changed("serve-mcp") {
		if len(paths) > 0 {
			return errServeWithPaths
		}
		cfg.MCPAddr = flags.ServeMCP
	}
	cfg.Verbose = cfg.Verbose || flags.Verbose

	ctx := logging.Setup(cmd.Context(), stderr, cfg.Verbose, cfg.Color())

	var onProgress func(batch.ProgressEvent)
	if cfg.Verbose {
		onProgress = func(ev batch.ProgressEvent) {
			slogctx.Debug(ctx, batch.FormatProgress(ev))
		}
	}
	runner := batch.NewRunner(fs, cfg.Workers, onProgress)

	// A configured mcpAddr only applies when there is nothing to extract.
	if cfg.MCPAddr != "" && len(paths) == 0 {
		server := mcptools.NewExtractMCPServer(mcptools.NewExtractService(runner))
		return mcptools.Serve(ctx, server, cfg.MCPAddr)
	}

	if len(paths) == 0 {
		if err := report.WriteError(stdout, report.ErrNoPaths); err != nil {
			return err
		}
		return report.ErrNoPaths
	}

	slogctx.Debug(ctx, "extracting", "files", len(paths), "workers", cfg.Workers)
	return report.Write(stdout, runner.Run(ctx, paths))
}
