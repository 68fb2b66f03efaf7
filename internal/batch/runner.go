// Package batch extracts many Python files in parallel while keeping the
// results in input order.
package batch

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/archpy/internal/extract"
)

// Runner reads files from a file system and extracts each one on a bounded
// pool of goroutines.
type Runner struct {
	fs         afero.Fs
	extractor  *extract.Extractor
	workers    int
	onProgress func(ProgressEvent)
}

// NewRunner creates a Runner reading from fs. workers bounds the number of
// files processed at once; zero or less means GOMAXPROCS. onProgress is
// called synchronously from each goroutine; it may be nil.
func NewRunner(fs afero.Fs, workers int, onProgress func(ProgressEvent)) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{
		fs:         fs,
		extractor:  extract.New(),
		workers:    workers,
		onProgress: onProgress,
	}
}

// Run extracts every path and returns one SourceFile per path, in input
// order. A failing file only degrades its own record. Once ctx is done no
// new file is started; files never started report the context error.
func (r *Runner) Run(ctx context.Context, paths []string) []extract.SourceFile {
	results := make([]extract.SourceFile, len(paths))

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, path := range paths {
		r.emit(ProgressEvent{Index: i, Path: path, Status: StatusPending})
	}

	for i, path := range paths {
		fctx := slogctx.With(ctx, slog.String("path", path))
		if err := ctx.Err(); err != nil {
			results[i] = r.degrade(fctx, i, path, err)
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = r.degrade(fctx, i, path, err)
				return nil
			}
			r.emit(ProgressEvent{Index: i, Path: path, Status: StatusWorking})
			results[i] = r.runOne(fctx, i, path)
			return nil
		})
	}

	// Workers never return errors; failures are carried in the records.
	_ = g.Wait()
	return results
}

func (r *Runner) runOne(ctx context.Context, i int, path string) extract.SourceFile {
	source, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return r.degrade(ctx, i, path, errors.Errorf("read %s: %w", path, err))
	}

	f := r.extractor.Extract(ctx, path, source)
	if f.ParseError != "" {
		slogctx.Warn(ctx, "file degraded", "error", f.ParseError)
		r.emit(ProgressEvent{Index: i, Path: path, Status: StatusDegraded, Message: f.ParseError})
		return f
	}

	slogctx.Debug(ctx, "file extracted",
		"size", humanize.Bytes(uint64(len(source))),
		"classes", len(f.Classes),
		"functions", len(f.Functions),
		"types", len(f.Types),
		"imports", len(f.Imports),
	)
	r.emit(ProgressEvent{Index: i, Path: path, Status: StatusComplete})
	return f
}

func (r *Runner) degrade(ctx context.Context, i int, path string, err error) extract.SourceFile {
	slogctx.Warn(ctx, "file degraded", "error", err)
	r.emit(ProgressEvent{Index: i, Path: path, Status: StatusDegraded, Message: err.Error()})
	return extract.Failed(path, err)
}

// emit sends a progress event if a callback is registered.
func (r *Runner) emit(ev ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(ev)
	}
}
