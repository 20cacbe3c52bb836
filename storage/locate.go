package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
)

// List expands a resolved root entry into the candidate file list.
//
// A file root passes through untouched regardless of pattern; the pattern
// applies only when expanding a directory, where it is matched against each
// entry's base name with shell-style glob semantics (*, ?, character
// classes), case-sensitively. Result order follows the backend's listing
// order.
func List(ctx context.Context, backend Backend, root FileInfo, pattern string, recurse bool) ([]FileInfo, error) {
	// Surface malformed patterns before touching the backend.
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	switch root.Kind {
	case KindFile:
		return []FileInfo{root}, nil
	case KindDirectory:
		entries, err := backend.List(ctx, root.Path, recurse)
		if err != nil {
			return nil, err
		}
		matched := make([]FileInfo, 0, len(entries))
		for _, entry := range entries {
			if entry.Kind != KindFile {
				continue
			}
			ok, err := path.Match(pattern, baseName(entry.Path))
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", pattern, err)
			}
			if ok {
				matched = append(matched, entry)
			}
		}
		return matched, nil
	default:
		return nil, fmt.Errorf("%s: %w", root.Path, ErrNotFound)
	}
}

// baseName handles both slash-separated object keys and OS paths.
func baseName(p string) string {
	return filepath.Base(filepath.FromSlash(p))
}
