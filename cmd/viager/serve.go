package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/logging"
	"github.com/rgehrsitz/viagerpro/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the valuation engine as a JSON API",
		Long: `Serve the engine over HTTP:

  POST /api/v1/valuations               value one deal (JSON body)
  GET  /api/v1/diseases                 disease catalog
  GET  /api/v1/departments/{postalCode} department price references
  GET  /healthz                         liveness

Logs are JSON unless VIAGER_LOG_FORMAT=text.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (default: $VIAGER_HTTP_ADDR or :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	appCfg := config.LoadAppConfig()
	format := appCfg.LogFormat
	if os.Getenv("VIAGER_LOG_FORMAT") == "" {
		format = "json"
	}
	logger, err := logging.FromSettings(appCfg.LogLevel, format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	engine, err := engineWithLogger(cmd, appCfg, logger)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = appCfg.HTTPAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(engine, logger).ListenAndServe(ctx, addr)
}
