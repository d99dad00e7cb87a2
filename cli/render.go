package cli

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/earthlight/colorquiver/field"
	"github.com/earthlight/colorquiver/render"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Preset string
	Rows   int
	Cols   int
	Mode   int
	Out    string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a preset vector field to a PNG",
		Long: `Render one of the analytic preset fields as a color quiver PNG and print
the magnitude statistics (ma and, for mode 3, the observed maximum).

Example:
  colorquiver render --preset vortex --mode 2 -o vortex.png
  colorquiver render --preset source --rows 200 --cols 200 --mode 3 -o source.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderDefaults(cmd, opts)
			return runRender(opts)
		},
	}

	cfg := DefaultConfig().Render
	cmd.Flags().StringVar(&opts.Preset, "preset", cfg.Preset,
		fmt.Sprintf("field preset, one of %v", field.PresetNames()))
	cmd.Flags().IntVar(&opts.Rows, "rows", cfg.Rows, "grid rows")
	cmd.Flags().IntVar(&opts.Cols, "cols", cfg.Cols, "grid columns")
	cmd.Flags().IntVar(&opts.Mode, "mode", cfg.Mode, "color mode (1, 2 or 3)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "quiver.png", "output PNG path")

	return cmd
}

// applyRenderDefaults lets the config file fill any flag the user did not set.
func applyRenderDefaults(cmd *cobra.Command, opts *RenderOptions) {
	cfg := opts.Config.Render
	if !cmd.Flags().Changed("preset") {
		opts.Preset = cfg.Preset
	}
	if !cmd.Flags().Changed("rows") {
		opts.Rows = cfg.Rows
	}
	if !cmd.Flags().Changed("cols") {
		opts.Cols = cfg.Cols
	}
	if !cmd.Flags().Changed("mode") {
		opts.Mode = cfg.Mode
	}
}

func runRender(opts *RenderOptions) error {
	f, err := field.FromPreset(opts.Preset, opts.Rows, opts.Cols, opts.Config.Render.FieldExtent())
	if err != nil {
		return err
	}

	ext := opts.Config.Render.Extent
	renderer := render.Renderer{
		Field: f,
		Rect:  render.Rect{XMin: ext[0], XMax: ext[1], YMin: ext[2], YMax: ext[3]},
		Mode:  opts.Mode,
	}

	img, stats, err := renderer.CreateImage()
	if err != nil {
		return err
	}

	if err := writePNG(opts.Out, img); err != nil {
		return err
	}

	slog.Info("quiver rendered", "path", opts.Out, "ma", stats.Ma, "max_value", stats.MaxValue)
	fmt.Printf("ma = %g\nmax_value = %g\n", stats.Ma, stats.MaxValue)
	return nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return out.Close()
}
