// Command apiserver runs the MolScreen HTTP server without the CLI wrapper,
// for container deployments where configuration comes from the environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/internal/interfaces/cli"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	if err := run(*configPath, *port); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	app, err := cli.BuildApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	logging.SetDefault(app.Logger)
	app.Logger.Info("starting apiserver",
		logging.String("version", config.Version),
		logging.Int("port", cfg.Server.Port),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		app.Logger.Info("signal received, shutting down", logging.String("signal", sig.String()))
	}

	if err := app.Server.Shutdown(context.Background()); err != nil {
		return err
	}
	app.Logger.Info("server stopped")
	return nil
}
