package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the screening API server and web form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg, opts.configPath)
		},
	}
}

// runServer starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests.  When a config file path is given, log-level
// edits to it are picked up without a restart.
func runServer(cfg *config.Config, configPath string) error {
	app, err := BuildApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	logging.SetDefault(app.Logger)
	if configPath != "" {
		watchLogLevel(configPath, app.Logger)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		app.Logger.Info("signal received, shutting down", logging.String("signal", sig.String()))
	}

	if err := app.Server.Shutdown(context.Background()); err != nil {
		app.Logger.Error("shutdown did not complete cleanly", logging.Err(err))
		return err
	}
	app.Logger.Info("server stopped")
	return nil
}

// watchLogLevel applies log-level changes from the config file at runtime.
// Other settings still require a restart.
func watchLogLevel(configPath string, logger logging.Logger) {
	var current string
	config.Watch(configPath, func(next *config.Config) {
		if next.Log.Level == current {
			return
		}
		if logging.SetLevel(logger, next.Log.Level) {
			current = next.Log.Level
			logger.Info("log level updated", logging.String("level", next.Log.Level))
		}
	})
}
