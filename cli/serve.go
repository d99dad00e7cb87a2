package cli

import (
	"context"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/earthlight/colorquiver/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve quiver and legend PNGs over HTTP",
		Long: `Start the HTTP server. Endpoints:

  /quiver        color quiver PNG for a preset field
  /quiver/stats  magnitude statistics as JSON
  /quiver/pixel  vector and coordinates under a pixel as JSON
  /legend        color wheel legend PNG

Example:
  colorquiver serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				opts.Addr = opts.Config.Addr
			}
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", DefaultConfig().Addr, "listen address")

	return cmd
}

func runServe(opts *ServeOptions) error {
	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &server.Server{
		Listener: listener,
		Extent:   opts.Config.Render.FieldExtent(),
		Font:     opts.Config.Legend.Font,
	}

	slog.Info("listening", "addr", listener.Addr().String())
	return srv.Serve(ctx)
}
