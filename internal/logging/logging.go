// Package logging installs the process logger. Records are rendered by tint
// and the logger travels in the context via slog-context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"
)

// Setup builds a tint handler writing to w, wraps it with slog-context so
// attributes added with slogctx.With reach every record, makes it the
// default logger and returns ctx carrying it. Debug records are emitted
// only when verbose is set.
func Setup(ctx context.Context, w io.Writer, verbose, color bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	tintHandler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		AddSource:  verbose,
		NoColor:    !color,
	})
	ctxHandler := slogctx.NewHandler(tintHandler, nil)

	logger := slog.New(ctxHandler)
	slog.SetDefault(logger)

	return slogctx.NewCtx(ctx, logger)
}
