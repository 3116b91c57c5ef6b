package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/neuronet/config"
	"github.com/katalvlaran/neuronet/logging"
	"github.com/katalvlaran/neuronet/telemetry"
)

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestNewViper_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuronet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  file: /data/web-Google.txt
  extra_columns: true
graph:
  dedup: true
query:
  default_depth: 3
log:
  level: debug
`), 0o644))
	t.Setenv("NEURONET_QUERY_DEFAULT_DEPTH", "5")
	t.Setenv("NEURONET_LOG_FORMAT", "json")

	v, err := config.NewViper(path)
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/data/web-Google.txt", cfg.Input.File)
	assert.True(t, cfg.Input.ExtraColumns)
	assert.True(t, cfg.Graph.Dedup)
	assert.Equal(t, 5, cfg.Query.DefaultDepth, "env wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"#", "%"}, cfg.Input.CommentPrefixes, "default kept")
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := config.NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewViper_NoHomeFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v, err := config.NewViper("")
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate_Errors(t *testing.T) {
	cases := map[string]func(*config.Config){
		"depth":       func(c *config.Config) { c.Query.DefaultDepth = 0 },
		"concurrency": func(c *config.Config) { c.Query.BFSConcurrency = -1 },
		"line bytes":  func(c *config.Config) { c.Input.MaxLineBytes = 10 },
		"log level":   func(c *config.Config) { c.Log = logging.Config{Level: "loud", Format: "text"} },
		"exporter":    func(c *config.Config) { c.Telemetry = telemetry.Config{TraceExporter: "otlp", MetricExporter: "none"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Input.File = "edges.txt.gz"
	cfg.Query.DefaultDepth = 2

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "default_depth: 2")

	var back config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, cfg, back)
}
