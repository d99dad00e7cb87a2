// Package cli implements the colorquiver command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	// Config is populated by PersistentPreRunE before any command runs.
	Config Config
}

// NewRootCommand creates the root command for the colorquiver CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "colorquiver",
		Short: "Render 2D vector fields as color-encoded rasters",
		Long: `colorquiver renders 2D vector fields as raster images where each pixel's
color encodes the local vector: direction as hue, magnitude as saturation
and value under one of three modes (1 linear, 2 bounded-bright,
3 clipped-statistical). A companion legend maps colors back to vectors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})))

			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewLegendCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}
