package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local reads the local filesystem.
type Local struct{}

// NewLocal returns a backend over the local filesystem.
func NewLocal() *Local {
	return &Local{}
}

// Name implements Backend.
func (l *Local) Name() string { return "local" }

// Stat implements Backend.
func (l *Local) Stat(_ context.Context, path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileInfo{Path: path, Kind: KindNotFound}, nil
		}
		return FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return FileInfo{Path: path, Kind: kindOf(st.Mode()), Size: st.Size()}, nil
}

// List implements Backend.
func (l *Local) List(_ context.Context, dir string, recursive bool) ([]FileInfo, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", dir, err)
		}
		var infos []FileInfo
		for _, entry := range entries {
			if entry.Type().IsDir() || !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				// Entry vanished between ReadDir and Info; skip it.
				continue
			}
			infos = append(infos, FileInfo{
				Path: filepath.Join(dir, entry.Name()),
				Kind: KindFile,
				Size: info.Size(),
			})
		}
		return infos, nil
	}

	var infos []FileInfo
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("list %s: %w", dir, err)
			}
			// Unreadable subtree entries are skipped, not fatal.
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		infos = append(infos, FileInfo{Path: path, Kind: KindFile, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Open implements Backend.
func (l *Local) Open(_ context.Context, path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &localFile{f: f}, nil
}

func kindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindUnknown
	}
}

type localFile struct {
	f *os.File
}

func (lf *localFile) ReadAt(p []byte, off int64) (int, error) { return lf.f.ReadAt(p, off) }

func (lf *localFile) Close() error { return lf.f.Close() }

func (lf *localFile) Size() (int64, error) {
	st, err := lf.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", lf.f.Name(), err)
	}
	return st.Size(), nil
}
