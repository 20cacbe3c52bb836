// Package storage abstracts the filesystems parqmeta can inspect.
//
// A Backend exposes a uniform stat/list/open capability over local disk,
// S3-compatible object stores, and HDFS. Resolve picks the backend from the
// scheme of a URI-style location and classifies the root entry, and List
// expands the root into the concrete set of candidate files.
//
// Backends are read-only and safe to share across goroutines; file handles
// returned by Open are not, and must be used and closed by a single caller.
package storage
