package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("parqmeta", pflag.ContinueOnError)
	flags.String("path", "", "")
	flags.String("inc", "*.parquet", "")
	flags.Bool("recurse", false, "")
	flags.Int("details", 1, "")
	flags.Int("pool", 0, "")
	flags.Bool("check", false, "")
	flags.String("log", "ERROR", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(testFlags(t, "--path", "/data"))
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.Path)
	assert.Equal(t, "*.parquet", cfg.Pattern)
	assert.False(t, cfg.Recurse)
	assert.Equal(t, 1, cfg.Details)
	assert.Equal(t, 0, cfg.Pool)
	assert.False(t, cfg.Check)
	assert.Equal(t, "ERROR", cfg.Log)
}

func TestLoadFlagsOverride(t *testing.T) {
	cfg, err := Load(testFlags(t,
		"--path", "s3://bucket/prefix",
		"--inc", "*.pq",
		"--recurse",
		"--details", "2",
		"--pool", "16",
		"--check",
		"--log", "debug",
	))
	require.NoError(t, err)

	assert.Equal(t, "s3://bucket/prefix", cfg.Path)
	assert.Equal(t, "*.pq", cfg.Pattern)
	assert.True(t, cfg.Recurse)
	assert.Equal(t, 2, cfg.Details)
	assert.Equal(t, 16, cfg.Pool)
	assert.True(t, cfg.Check)
	assert.Equal(t, "DEBUG", cfg.Log)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PARQMETA_S3_ENDPOINT", "localhost:9000")
	t.Setenv("PARQMETA_S3_ACCESS_KEY", "ak")
	t.Setenv("PARQMETA_S3_SECRET_KEY", "sk")
	t.Setenv("PARQMETA_S3_REGION", "us-east-1")
	t.Setenv("PARQMETA_HDFS_USER", "hadoop")
	t.Setenv("PARQMETA_DETAILS", "2")

	cfg, err := Load(testFlags(t, "--path", "/data"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, "ak", cfg.S3.AccessKey)
	assert.Equal(t, "sk", cfg.S3.SecretKey)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "hadoop", cfg.HDFS.User)
	assert.Equal(t, 2, cfg.Details)
}

func TestLoadFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("PARQMETA_DETAILS", "0")

	cfg, err := Load(testFlags(t, "--path", "/data", "--details", "2"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Details)
}

func TestLoadRejectsMissingPath(t *testing.T) {
	_, err := Load(testFlags(t))
	require.Error(t, err)
}

func TestLoadRejectsBadDetails(t *testing.T) {
	for _, v := range []string{"-1", "3"} {
		_, err := Load(testFlags(t, "--path", "/data", "--details", v))
		assert.Error(t, err, "details %s", v)
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	_, err := Load(testFlags(t, "--path", "/data", "--log", "LOUD"))
	require.Error(t, err)
}

func TestLogLevelMapping(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"DEBUG":    slog.LevelDebug,
		"INFO":     slog.LevelInfo,
		"WARNING":  slog.LevelWarn,
		"ERROR":    slog.LevelError,
		"CRITICAL": slog.LevelError + 4,
	} {
		cfg, err := Load(testFlags(t, "--path", "/data", "--log", name))
		require.NoError(t, err)
		assert.Equal(t, want, cfg.LogLevel(), "level %s", name)
	}
}
