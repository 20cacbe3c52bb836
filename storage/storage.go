package storage

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors returned during location resolution. These are fatal: they
// indicate a bad root location, not a bad candidate file.
var (
	ErrNotFound          = errors.New("entry not found")
	ErrUnsupportedEntry  = errors.New("entry is neither a file nor a directory")
	ErrUnsupportedScheme = errors.New("unsupported location scheme")
)

// EntryKind classifies a backend entry.
type EntryKind int

const (
	KindUnknown EntryKind = iota
	KindFile
	KindDirectory
	KindNotFound
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// FileInfo describes one entry discovered on a backend. Path is
// backend-relative (a filesystem path, an object key, or an HDFS path).
// Size is 0 when the backend did not report one.
type FileInfo struct {
	Path string
	Kind EntryKind
	Size int64
}

// File is an open, seekable, random-access byte source for one entry.
//
// Size may fail on backends with unreliable metadata; callers treat that as
// size-unknown rather than as a failed open.
type File interface {
	io.ReaderAt
	io.Closer
	Size() (int64, error)
}

// Backend is a storage system exposing a uniform stat/list/open capability.
// Implementations are safe for concurrent use by multiple goroutines.
type Backend interface {
	// Name identifies the backend kind, for diagnostics.
	Name() string

	// Stat classifies the entry at path. A missing entry is reported as
	// Kind == KindNotFound with a nil error; errors are reserved for
	// transport-level failures.
	Stat(ctx context.Context, path string) (FileInfo, error)

	// List returns the file entries under dir, descending into
	// subdirectories when recursive is true. Entries that disappear or
	// cannot be classified during the walk are skipped.
	List(ctx context.Context, dir string, recursive bool) ([]FileInfo, error)

	// Open returns a random-access handle for the file at path.
	Open(ctx context.Context, path string) (File, error)
}
