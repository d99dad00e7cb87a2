package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/earthlight/colorquiver/render"
)

// LegendOptions holds flags for the legend command.
type LegendOptions struct {
	*RootOptions
	Mode     int
	Min      float64
	Max      float64
	MaxValue float64
	Cells    int
	Side     int
	Out      string
}

// NewLegendCommand creates the legend command.
func NewLegendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LegendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Render a color wheel legend to a PNG",
		Long: `Render the circular legend explaining the color coding: hue around the
wheel is vector direction, distance from the center is magnitude over the
given [min, max] range.

Example:
  colorquiver legend --mode 2 --max 3.5 -o legend.png
  colorquiver legend --mode 3 --max 2.1 --max-value 4.8 -o legend.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLegendDefaults(cmd, opts)
			return runLegend(opts)
		},
	}

	cfg := DefaultConfig().Legend
	cmd.Flags().IntVar(&opts.Mode, "mode", render.ModeLinear, "color mode (1, 2 or 3)")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "magnitude at the wheel center")
	cmd.Flags().Float64Var(&opts.Max, "max", 1, "magnitude at the wheel edge")
	cmd.Flags().Float64Var(&opts.MaxValue, "max-value", 0, "observed maximum shown in the mode 3 title")
	cmd.Flags().IntVar(&opts.Cells, "cells", cfg.Cells, "wheel cells per side")
	cmd.Flags().IntVar(&opts.Side, "side", cfg.Side, "output size in pixels per side")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "legend.png", "output PNG path")

	return cmd
}

func applyLegendDefaults(cmd *cobra.Command, opts *LegendOptions) {
	cfg := opts.Config.Legend
	if !cmd.Flags().Changed("cells") {
		opts.Cells = cfg.Cells
	}
	if !cmd.Flags().Changed("side") {
		opts.Side = cfg.Side
	}
}

func runLegend(opts *LegendOptions) error {
	img, err := (render.Legend{
		Cells:    opts.Cells,
		Side:     opts.Side,
		Mapping:  render.Mapping{Min: opts.Min, Max: opts.Max},
		Mode:     opts.Mode,
		MaxValue: opts.MaxValue,
		Font:     opts.Config.Legend.Font,
	}).CreateImage()
	if err != nil {
		return err
	}

	if err := writePNG(opts.Out, img); err != nil {
		return err
	}
	slog.Info("legend rendered", "path", opts.Out)
	return nil
}
