package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"invertdeck/backend/internal/infra/logger"
	"invertdeck/backend/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload route and the DeckService RPCs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.process, a.inspect, server.Options{
				AllowedOrigin:  a.cfg.Server.AllowedOrigin,
				MaxUploadBytes: a.cfg.Server.MaxUploadBytes(),
				Health:         logger.IsReady,
			}, a.log)

			return server.ListenAndServe(ctx, a.cfg.Server.Addr, srv.Handler(), a.log)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return c
}
