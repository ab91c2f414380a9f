package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stlander.yaml")
	data := `
align:
  pa2_target: Z
  epsilon: 1e-9
render:
  size: 400
  style: toon
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Z", cfg.Align.PA2Target)
	assert.Equal(t, 1e-9, cfg.Align.Epsilon)
	assert.Equal(t, 400, cfg.Render.Size)
	assert.Equal(t, "toon", cfg.Render.Style)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, Default().Render.Scale, cfg.Render.Scale)
	assert.Equal(t, Default().Render.Ambient, cfg.Render.Ambient)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
