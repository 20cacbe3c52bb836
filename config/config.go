// Package config loads the run configuration from defaults, PARQMETA_*
// environment variables, and command-line flags, in increasing precedence.
//
// The configuration is built once at startup and passed by value into the
// components that need it; nothing here is mutated after Load returns.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/vegasq/parqmeta/storage"
)

// Config is the immutable run configuration.
type Config struct {
	Path    string
	Pattern string
	Recurse bool
	Details int
	Pool    int
	Check   bool
	Log     string

	S3   storage.S3Options
	HDFS storage.HDFSOptions
}

var logLevels = map[string]slog.Level{
	"DEBUG":    slog.LevelDebug,
	"INFO":     slog.LevelInfo,
	"WARNING":  slog.LevelWarn,
	"ERROR":    slog.LevelError,
	"CRITICAL": slog.LevelError + 4,
}

// Load builds the configuration from defaults, then PARQMETA_* environment
// variables, then the given flag set. Validation failures here are fatal
// configuration errors, reported before any file is touched.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"inc":     "*.parquet",
		"details": 1,
		"log":     "ERROR",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// PARQMETA_S3_ENDPOINT -> s3.endpoint, PARQMETA_HDFS_USER -> hdfs.user
	envProvider := env.Provider("PARQMETA_", ".", func(key string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(key, "PARQMETA_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := &Config{
		Path:    k.String("path"),
		Pattern: k.String("inc"),
		Recurse: k.Bool("recurse"),
		Details: k.Int("details"),
		Pool:    k.Int("pool"),
		Check:   k.Bool("check"),
		Log:     strings.ToUpper(k.String("log")),
		S3: storage.S3Options{
			Endpoint:  k.String("s3.endpoint"),
			AccessKey: k.String("s3.access.key"),
			SecretKey: k.String("s3.secret.key"),
			Region:    k.String("s3.region"),
			UseSSL:    k.Bool("s3.use.ssl"),
		},
		HDFS: storage.HDFSOptions{
			User: k.String("hdfs.user"),
		},
	}

	if cfg.Path == "" {
		return nil, fmt.Errorf("--path is required")
	}
	if cfg.Pattern == "" {
		return nil, fmt.Errorf("--inc pattern must not be empty")
	}
	if cfg.Details < 0 || cfg.Details > 2 {
		return nil, fmt.Errorf("invalid --details %d: must be 0 (check), 1 (simple), or 2 (exhaustive)", cfg.Details)
	}
	if _, ok := logLevels[cfg.Log]; !ok {
		return nil, fmt.Errorf("invalid --log %q: must be one of DEBUG, INFO, WARNING, ERROR, CRITICAL", cfg.Log)
	}

	return cfg, nil
}

// LogLevel maps the configured level name to a slog level.
func (c *Config) LogLevel() slog.Level {
	return logLevels[c.Log]
}

// StorageOptions returns the backend connection settings.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{S3: c.S3, HDFS: c.HDFS}
}
