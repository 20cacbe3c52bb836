// Package dispatch fans per-file metadata extraction out across a bounded
// pool of workers.
//
// Tasks run in parallel but results are returned in the order the files
// were submitted, so callers can rely on positional correspondence between
// inputs and outputs. A single file's failure is already captured inside
// its Result by the extractor and never cancels sibling tasks.
package dispatch

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vegasq/parqmeta/meta"
	"github.com/vegasq/parqmeta/storage"
)

// DefaultWorkers is the pool size used when the caller does not supply a
// positive one: twice the available parallelism minus one, floored at 1.
func DefaultWorkers() int {
	n := 2*runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// Pool runs extractions with at most Workers in flight. A non-positive
// Workers falls back to DefaultWorkers.
type Pool struct {
	Workers int
	Logger  *slog.Logger
}

// Run extracts every file and returns one Result per input, in input order.
//
// The only error Run returns is a configuration error surfaced by the
// extractor (an unrecognized detail level) or a canceled context; per-file
// failures are embedded in the corresponding Result.
func (p *Pool) Run(ctx context.Context, extractor *meta.Extractor, files []storage.FileInfo) ([]meta.Result, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if p.Logger != nil {
		p.Logger.Debug("dispatching extractions", "files", len(files), "workers", workers)
	}

	results := make([]meta.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := extractor.Extract(ctx, file.Path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
