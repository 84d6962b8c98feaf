package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ozkayhan/wat2/api"
	"github.com/ozkayhan/wat2/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		host      string
		port      int
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Settings come from WAT2_* environment variables
(optionally loaded from .env or $ENV_FILE); flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("static-dir") {
				cfg.StaticDir = staticDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Debug("config loaded", "addr", cfg.Addr(), "static_dir", cfg.StaticDir, "cors", cfg.CORSOrigins)
			return api.Serve(ctx, api.NewServer(cfg, logger), logger, cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides WAT2_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides WAT2_PORT)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "frontend build to serve (overrides WAT2_STATIC_DIR)")
	return cmd
}
