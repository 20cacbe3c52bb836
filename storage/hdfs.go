package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/colinmarc/hdfs/v2"
)

// HDFSOptions carries the connection settings for an HDFS namenode.
type HDFSOptions struct {
	User string
}

// HDFS reads a Hadoop distributed filesystem through a namenode.
type HDFS struct {
	client *hdfs.Client
}

// NewHDFS connects to the namenode at address (host:port). The hdfs client
// multiplexes requests and is safe for concurrent use.
func NewHDFS(address string, opts HDFSOptions) (*HDFS, error) {
	if address == "" {
		return nil, fmt.Errorf("hdfs location has no namenode address")
	}
	user := opts.User
	if user == "" {
		user = os.Getenv("USER")
	}
	client, err := hdfs.NewClient(hdfs.ClientOptions{
		Addresses: strings.Split(address, ","),
		User:      user,
	})
	if err != nil {
		return nil, fmt.Errorf("hdfs client: %w", err)
	}
	return &HDFS{client: client}, nil
}

// Name implements Backend.
func (h *HDFS) Name() string { return "hdfs" }

// Stat implements Backend.
func (h *HDFS) Stat(_ context.Context, path string) (FileInfo, error) {
	st, err := h.client.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileInfo{Path: path, Kind: KindNotFound}, nil
		}
		return FileInfo{}, fmt.Errorf("stat hdfs %s: %w", path, err)
	}
	return FileInfo{Path: path, Kind: kindOf(st.Mode()), Size: st.Size()}, nil
}

// List implements Backend.
func (h *HDFS) List(_ context.Context, dir string, recursive bool) ([]FileInfo, error) {
	if !recursive {
		entries, err := h.client.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("list hdfs %s: %w", dir, err)
		}
		var infos []FileInfo
		for _, st := range entries {
			if !st.Mode().IsRegular() {
				continue
			}
			infos = append(infos, FileInfo{
				Path: filepath.Join(dir, st.Name()),
				Kind: KindFile,
				Size: st.Size(),
			})
		}
		return infos, nil
	}

	var infos []FileInfo
	err := h.client.Walk(dir, func(path string, st fs.FileInfo, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("list hdfs %s: %w", dir, err)
			}
			return nil
		}
		if !st.Mode().IsRegular() {
			return nil
		}
		infos = append(infos, FileInfo{Path: path, Kind: KindFile, Size: st.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Open implements Backend.
func (h *HDFS) Open(_ context.Context, path string) (File, error) {
	f, err := h.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hdfs %s: %w", path, err)
	}
	return &hdfsFile{f: f}, nil
}

type hdfsFile struct {
	f *hdfs.FileReader
}

func (hf *hdfsFile) ReadAt(p []byte, off int64) (int, error) { return hf.f.ReadAt(p, off) }

func (hf *hdfsFile) Close() error { return hf.f.Close() }

func (hf *hdfsFile) Size() (int64, error) {
	st := hf.f.Stat()
	if st == nil {
		return 0, fmt.Errorf("hdfs reader has no file info")
	}
	return st.Size(), nil
}
