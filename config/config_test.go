package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplanner/config"
)

var keys = []string{
	"TUBE_DATA_FILE", "TUBE_SHEET", "TUBE_SOURCE", "TUBE_HISTOGRAM_FILE",
	"TUBE_HISTOGRAM_BINS", "TUBE_CACHE_TTL", "TUBE_HTTP_ADDR", "TUBE_LOG_LEVEL",
	"TUBE_LOG_FORMAT", "NEO4J_URI", "NEO4J_USER", "NEO4J_PASSWORD", "NEO4J_DATABASE",
}

// clean blanks every setting and moves into an empty directory so no .env
// is picked up.
func clean(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clean(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "./London Underground data.xlsx", cfg.DataFile)
	assert.Equal(t, "", cfg.Sheet)
	assert.Equal(t, config.SourceFile, cfg.Source)
	assert.Equal(t, "journey_times.png", cfg.HistogramFile)
	assert.Equal(t, 20, cfg.HistogramBins)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
}

func TestLoad_Overrides(t *testing.T) {
	clean(t)
	t.Setenv("TUBE_DATA_FILE", "/data/tube.csv")
	t.Setenv("TUBE_SOURCE", "Neo4j")
	t.Setenv("TUBE_HISTOGRAM_BINS", " 12 ")
	t.Setenv("TUBE_CACHE_TTL", "0")
	t.Setenv("TUBE_LOG_LEVEL", "debug")
	t.Setenv("TUBE_LOG_FORMAT", "json")
	t.Setenv("NEO4J_DATABASE", "tube")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/tube.csv", cfg.DataFile)
	assert.Equal(t, config.SourceNeo4j, cfg.Source)
	assert.Equal(t, 12, cfg.HistogramBins)
	assert.Zero(t, cfg.CacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "tube", cfg.Neo4j.Database)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"TUBE_HISTOGRAM_BINS": "twenty",
		"TUBE_CACHE_TTL":      "ten minutes",
		"TUBE_LOG_LEVEL":      "loud",
		"TUBE_SOURCE":         "postgres",
		"TUBE_LOG_FORMAT":     "xml",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clean(t)
			t.Setenv(key, value)
			_, err := config.Load()
			require.ErrorIs(t, err, config.ErrConfig)
		})
	}

	t.Run("zero bins", func(t *testing.T) {
		clean(t)
		t.Setenv("TUBE_HISTOGRAM_BINS", "0")
		_, err := config.Load()
		require.ErrorIs(t, err, config.ErrConfig)
	})
}

func TestLoad_DotEnv(t *testing.T) {
	clean(t)
	require.NoError(t, os.Unsetenv("TUBE_HTTP_ADDR"))
	require.NoError(t, os.Unsetenv("TUBE_SHEET"))
	require.NoError(t, os.WriteFile(".env", []byte("TUBE_HTTP_ADDR=:9090\nTUBE_SHEET=Tube\n"), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "Tube", cfg.Sheet)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrConfig)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	config.Logger(config.Config{LogLevel: slog.LevelWarn, LogFormat: "json"}, &buf).Info("hidden")
	assert.Zero(t, buf.Len())

	config.Logger(config.Config{LogLevel: slog.LevelInfo, LogFormat: "json"}, &buf).Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	config.Logger(config.Config{LogFormat: "text"}, &buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
