package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options carries the connection settings for an S3-compatible object
// store. Credentials are supplied by the environment, never discovered here.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// S3 reads a single bucket of an S3-compatible object store. Paths are
// object keys relative to the bucket; a key prefix acts as a directory.
type S3 struct {
	client *minio.Client
	bucket string
}

// NewS3 returns a backend over one bucket. The minio client is safe for
// concurrent use, so a single backend serves all workers.
func NewS3(bucket string, opts S3Options) (*S3, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 location has no bucket")
	}
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is not configured")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}
	return &S3{client: client, bucket: bucket}, nil
}

// Name implements Backend.
func (s *S3) Name() string { return "s3" }

// Stat implements Backend. Object stores have no real directories, so a key
// that does not exist as an object but has objects under it classifies as a
// directory. The bucket root (empty key) is always a directory.
func (s *S3) Stat(ctx context.Context, path string) (FileInfo, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return FileInfo{Path: key, Kind: KindDirectory}, nil
	}

	obj, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return FileInfo{Path: obj.Key, Kind: KindFile, Size: obj.Size}, nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code != "NoSuchKey" && resp.StatusCode != 404 {
		return FileInfo{}, fmt.Errorf("stat s3://%s/%s: %w", s.bucket, key, err)
	}

	prefix := key
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	listing := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:  prefix,
		MaxKeys: 1,
	})
	for entry := range listing {
		if entry.Err != nil {
			return FileInfo{}, fmt.Errorf("probe s3://%s/%s: %w", s.bucket, prefix, entry.Err)
		}
		return FileInfo{Path: key, Kind: KindDirectory}, nil
	}
	return FileInfo{Path: key, Kind: KindNotFound}, nil
}

// List implements Backend. Non-recursive listings use the "/" delimiter;
// common prefixes (subdirectories) come back with a trailing slash and are
// skipped, matching the files-only contract.
func (s *S3) List(ctx context.Context, dir string, recursive bool) ([]FileInfo, error) {
	prefix := strings.TrimPrefix(dir, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var infos []FileInfo
	listing := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	})
	for entry := range listing {
		if entry.Err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", s.bucket, prefix, entry.Err)
		}
		if strings.HasSuffix(entry.Key, "/") {
			continue
		}
		infos = append(infos, FileInfo{Path: entry.Key, Kind: KindFile, Size: entry.Size})
	}
	return infos, nil
}

// Open implements Backend. minio objects satisfy io.ReaderAt and fetch
// ranges lazily, so the footer read never downloads the whole object.
func (s *S3) Open(ctx context.Context, path string) (File, error) {
	key := strings.TrimPrefix(path, "/")
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("open s3://%s/%s: %w", s.bucket, key, err)
	}
	return &s3File{obj: obj}, nil
}

type s3File struct {
	obj *minio.Object
}

func (f *s3File) ReadAt(p []byte, off int64) (int, error) { return f.obj.ReadAt(p, off) }

func (f *s3File) Close() error { return f.obj.Close() }

func (f *s3File) Size() (int64, error) {
	stat, err := f.obj.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat object: %w", err)
	}
	return stat.Size, nil
}
