package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tally/internal/backend"
	"tally/internal/config"
	"tally/internal/console"
	"tally/internal/ledger"
	"tally/internal/log"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file        string
		backendName string
		debug       bool
	)

	cmd := &cobra.Command{
		Use:          "tally",
		Short:        "tally — interactive command-line expense tracker",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			LoadEnvFile()

			cfg := config.Load()
			if file != "" {
				cfg.LedgerFile = file
			}
			if backendName != "" {
				cfg.DataBackend = backendName
			}

			level, _ := cfg.SlogLevel()
			if debug {
				level = slog.LevelDebug
			}
			logger := SetupLogger(level)

			if err := cfg.Validate(); err != nil {
				logger.Error("Configuration validation failed", log.FieldError, err)
				return err
			}

			backendCfg, err := backend.FromAppConfig(cfg)
			if err != nil {
				logger.Error("Invalid backend configuration", log.FieldError, err)
				return err
			}
			store, err := backend.CreateStore(backendCfg, logger)
			if err != nil {
				logger.Error("Failed to initialize storage", log.FieldError, err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			lgr := ledger.New(ctx, store, logger)
			logger.Info("Starting expense tracker",
				log.FieldOperation, log.OpStartup,
				log.FieldBackend, cfg.DataBackend,
				log.FieldCount, lgr.Len())

			ui := console.New(os.Stdin, os.Stdout, lgr, logger)
			if err := ui.Run(ctx); err != nil {
				// Context cancellation on SIGINT is a normal way out.
				logger.Info("Console loop interrupted", log.FieldError, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "ledger file location (overrides LEDGER_FILE)")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "", "storage backend: file or memory (overrides DATA_BACKEND)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging")
	return cmd
}
