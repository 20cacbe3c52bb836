package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Options holds the per-backend connection settings used during resolution.
// The zero value is sufficient for local paths.
type Options struct {
	S3   S3Options
	HDFS HDFSOptions
}

// Resolve parses a URI-style location, constructs the matching backend, and
// classifies the root entry.
//
// Supported schemes: none or file:// (local disk), s3:// and minio://
// (object store, host is the bucket), hdfs:// (host is the namenode).
// A missing root fails with ErrNotFound; a root that is neither a file nor a
// directory fails with ErrUnsupportedEntry.
func Resolve(ctx context.Context, location string, opts Options) (Backend, FileInfo, error) {
	backend, root, err := backendFor(location, opts)
	if err != nil {
		return nil, FileInfo{}, err
	}

	info, err := backend.Stat(ctx, root)
	if err != nil {
		return nil, FileInfo{}, err
	}
	switch info.Kind {
	case KindNotFound:
		return nil, FileInfo{}, fmt.Errorf("%s: %w", location, ErrNotFound)
	case KindUnknown:
		return nil, FileInfo{}, fmt.Errorf("%s: %w", location, ErrUnsupportedEntry)
	}
	return backend, info, nil
}

func backendFor(location string, opts Options) (Backend, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		// Not a URI; treat it as a plain local path.
		return NewLocal(), location, nil
	}

	switch u.Scheme {
	case "":
		return NewLocal(), location, nil
	case "file":
		return NewLocal(), u.Path, nil
	case "s3", "minio":
		backend, err := NewS3(u.Host, opts.S3)
		if err != nil {
			return nil, "", err
		}
		return backend, strings.TrimPrefix(u.Path, "/"), nil
	case "hdfs":
		backend, err := NewHDFS(u.Host, opts.HDFS)
		if err != nil {
			return nil, "", err
		}
		path := u.Path
		if path == "" {
			path = "/"
		}
		return backend, path, nil
	default:
		return nil, "", fmt.Errorf("%s: %w", u.Scheme, ErrUnsupportedScheme)
	}
}
