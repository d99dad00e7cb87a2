package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthlight/colorquiver/render"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "vortex", cfg.Render.Preset)
	assert.Equal(t, render.ModeLinear, cfg.Render.Mode)
	assert.Equal(t, 64, cfg.Legend.Cells)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
render:
  preset: source
  mode: 3
  extent: [-2, 2, -2, 2]
legend:
  cells: 32
  font:
    size: 14
    weight: bold
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "source", cfg.Render.Preset)
	assert.Equal(t, render.ModeClipped, cfg.Render.Mode)
	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.Render.Rows)
	assert.Equal(t, 32, cfg.Legend.Cells)
	assert.Equal(t, 256, cfg.Legend.Side)
	assert.Equal(t, render.FontConfig{Size: 14, Weight: "bold"}, cfg.Legend.Font)

	ext := cfg.Render.FieldExtent()
	assert.Equal(t, -2.0, ext.XMin)
	assert.Equal(t, 2.0, ext.YMax)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: ["), 0644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
