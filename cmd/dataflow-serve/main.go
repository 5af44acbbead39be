// Command dataflow-serve serves the DataFlow landing page for local development.
//
// Build the page first:
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/dataflow
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/dataflow/internal/devserver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr     string
		webDir   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "dataflow-serve",
		Short: "Serve the DataFlow landing page and its wasm bundle",
		Long: `Serves the host page, wasm_exec.js and main.wasm for local development.

Settings come from DATAFLOW_ADDR, DATAFLOW_WEB_DIR, DATAFLOW_LOG_LEVEL and
DATAFLOW_SHUTDOWN_TIMEOUT; flags override the environment.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := devserver.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("web-dir") {
				cfg.WebDir = webDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger, err := devserver.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if _, err := os.Stat(cfg.WebDir); err != nil {
				logger.Warn("web directory not readable, only the host page will load",
					zap.String("web_dir", cfg.WebDir), zap.Error(err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := devserver.New(cfg, logger).Run(ctx); err != nil {
				return fmt.Errorf("dataflow-serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&webDir, "web-dir", "web", "directory holding main.wasm, wasm_exec.js and app.css")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
