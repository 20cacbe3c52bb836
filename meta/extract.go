package meta

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/parqmeta/sanitize"
	"github.com/vegasq/parqmeta/storage"
)

// Extractor reads footer metadata through a shared, read-only backend
// handle. It is safe for concurrent use by multiple workers.
type Extractor struct {
	Backend storage.Backend
	Detail  DetailLevel
	Logger  *slog.Logger
}

// NewExtractor returns an extractor for the given backend and detail level.
// A nil logger discards diagnostics.
func NewExtractor(backend storage.Backend, detail DetailLevel, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{Backend: backend, Detail: detail, Logger: logger}
}

// Extract opens the file at path, parses its footer, and renders it at the
// configured detail level.
//
// Open failures, truncated or malformed footers, and any other per-file
// problem are reported inside the Result as StatusError with nil metadata;
// the returned error is non-nil only for an unrecognized detail level,
// which is caller misconfiguration and must fail the run rather than be
// swallowed per file.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	result := Result{Status: StatusError, FileName: path}

	e.Logger.Debug("opening file", "path", path, "backend", e.Backend.Name())

	f, err := e.Backend.Open(ctx, path)
	if err != nil {
		e.Logger.Error("cannot open file", "path", path, "error", err)
		return result, nil
	}
	defer func() { _ = f.Close() }()

	// Size reporting is unreliable on some backends; a missing size is
	// recorded as 0, not treated as a failed extraction.
	size, err := f.Size()
	if err != nil {
		e.Logger.Debug("size unavailable", "path", path, "error", err)
		size = 0
	}
	result.FileSize = size

	pf, err := parquet.OpenFile(f, size,
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true),
	)
	if err != nil {
		e.Logger.Error("cannot parse file, invalid format?", "path", path, "error", err)
		return result, nil
	}

	switch e.Detail {
	case CheckOnly:
		// Footer parsed; nothing to render.
	case Simple:
		result.Metadata = buildSummary(pf)
	case Exhaustive:
		tree, err := sanitize.Tree(pf.Metadata(), true)
		if err != nil {
			return result, fmt.Errorf("sanitize footer of %s: %w", path, err)
		}
		result.Metadata = tree
	default:
		return result, fmt.Errorf("unknown detail level %d", int(e.Detail))
	}

	result.Status = StatusOK
	return result, nil
}
