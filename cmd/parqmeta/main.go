// Command parqmeta inspects Parquet files on local disk, S3-compatible
// object stores, or HDFS and reports their structural metadata without
// reading row data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/parqmeta/config"
	"github.com/vegasq/parqmeta/dispatch"
	"github.com/vegasq/parqmeta/meta"
	"github.com/vegasq/parqmeta/output"
	"github.com/vegasq/parqmeta/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parqmeta",
		Short: "Extract metadata from Parquet file(s) in the given path",
		Long: `parqmeta inspects one or many Parquet files and reports their structural
metadata: schema, row/column counts, format version, and (optionally) the
full footer including per-column-chunk statistics. Row data is never read.

Locations may be local paths, file://, s3://bucket/prefix (endpoint and
credentials via PARQMETA_S3_* environment variables), or
hdfs://namenode:port/path (user via PARQMETA_HDFS_USER).`,
		Example: `  parqmeta --path data/
  parqmeta --path data/ --recurse --details 2
  parqmeta --path s3://warehouse/events --inc '*.parquet' --pool 16
  parqmeta --path hdfs://namenode:9000/warehouse --check`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("path", "", "root file or directory location (local path, file://, s3://, hdfs://)")
	flags.String("inc", "*.parquet", "glob pattern for directory entries")
	flags.Bool("recurse", false, "descend into subdirectories when the root is a directory")
	flags.Int("details", 1, "detail level: 0=check only, 1=simple schema, 2=exhaustive footer")
	flags.Int("pool", 0, "worker count; non-positive uses 2*cores-1")
	flags.Bool("check", false, "emit one status|file_name|file_size line per file instead of JSON")
	flags.String("log", "ERROR", "log level: DEBUG, INFO, WARNING, ERROR, CRITICAL")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))

	// Already bounds-checked by config.Load; parsed here into the typed tier.
	detail, err := meta.ParseDetailLevel(cfg.Details)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	backend, root, err := storage.Resolve(ctx, cfg.Path, cfg.StorageOptions())
	if err != nil {
		return err
	}
	logger.Debug("resolved root", "backend", backend.Name(), "kind", root.Kind.String(), "path", root.Path)

	files, err := storage.List(ctx, backend, root, cfg.Pattern, cfg.Recurse)
	if err != nil {
		return err
	}
	logger.Debug("collected candidates", "count", len(files))

	extractor := meta.NewExtractor(backend, detail, logger)
	pool := dispatch.Pool{Workers: cfg.Pool, Logger: logger}

	results, err := pool.Run(ctx, extractor, files)
	if err != nil {
		return err
	}

	var formatter output.Formatter
	if cfg.Check {
		formatter = output.NewCheckFormatter(cmd.OutOrStdout())
	} else {
		formatter = output.NewJSONFormatter(cmd.OutOrStdout())
	}
	return formatter.Format(results)
}
