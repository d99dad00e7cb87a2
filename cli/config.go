package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/earthlight/colorquiver/field"
	"github.com/earthlight/colorquiver/render"
)

// Config holds the file-configurable defaults. Command line flags override
// whatever is loaded here.
type Config struct {
	Addr   string       `yaml:"addr"`
	Render RenderConfig `yaml:"render"`
	Legend LegendConfig `yaml:"legend"`
}

// RenderConfig configures field sampling and quiver rendering.
type RenderConfig struct {
	Preset string     `yaml:"preset"`
	Rows   int        `yaml:"rows"`
	Cols   int        `yaml:"cols"`
	Mode   int        `yaml:"mode"`
	Extent [4]float64 `yaml:"extent"` // xmin, xmax, ymin, ymax
}

// LegendConfig configures legend rendering.
type LegendConfig struct {
	Cells int               `yaml:"cells"`
	Side  int               `yaml:"side"`
	Font  render.FontConfig `yaml:"font"`
}

// DefaultConfig mirrors the original example script: a 100x100 vortex over
// [-1,1]^2 in linear mode, with a 64-cell legend.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
		Render: RenderConfig{
			Preset: "vortex",
			Rows:   100,
			Cols:   100,
			Mode:   render.ModeLinear,
			Extent: [4]float64{-1, 1, -1, 1},
		},
		Legend: LegendConfig{
			Cells: 64,
			Side:  256,
			Font:  render.DefaultFont,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FieldExtent converts the configured extent tuple.
func (rc RenderConfig) FieldExtent() field.Extent {
	return field.Extent{
		XMin: rc.Extent[0], XMax: rc.Extent[1],
		YMin: rc.Extent[2], YMax: rc.Extent[3],
	}
}
