/*
main.go - API server entry point

PURPOSE:
  Starts the season projection API on its own, without the rest of the
  CLI. Equivalent to `wat2 serve`.

STARTUP SEQUENCE:
  1. Load config (.env / ENV_FILE, then WAT2_* variables)
  2. Build the logger at the configured level
  3. Configure HTTP router and server
  4. Serve until SIGINT/SIGTERM, then shut down gracefully

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides WAT2_PORT)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (WAT2_SHUTDOWN_TIMEOUT)
  3. Exit

EXAMPLES:
  ./server
  ./server -port=3000
  ENV_FILE=prod.env ./server

SEE ALSO:
  - config/config.go: Environment variables
  - api/server.go: Router configuration
  - cli/serve.go: The same server under the wat2 CLI
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/ozkayhan/wat2/api"
	"github.com/ozkayhan/wat2/config"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (overrides WAT2_PORT)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *port != 0 {
		cfg.Port = *port
		if err := cfg.Validate(); err != nil {
			logger.Fatal("invalid port", "err", err)
		}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("invalid log level", "err", err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("API available", "url", "http://"+cfg.Addr()+"/api")
	if err := api.Serve(ctx, api.NewServer(cfg, logger), logger, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}
