package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"yardwork/cmd"
	"yardwork/internal/pkg/logger"

	"github.com/labstack/gommon/log"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	if err := cmd.LoadEnvFiles(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	config, err := cmd.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(logger.Config{
		Level:        config.Logging.Level,
		Format:       config.Logging.Format,
		Output:       config.Logging.Output,
		EnableSource: config.Logging.EnableSource,
	})
	slog.SetDefault(appLogger)

	if err = run(config, appLogger); err != nil {
		appLogger.Error("yardwork stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(config cmd.Config, appLogger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Error("failed to close resources", slog.Any("error", closeErr))
		}
	}()

	e, err := app.Router()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLevel(config.Logging.Level))

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", config.Server.Port),
		Handler:      e,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server listening", slog.String("addr", server.Addr))
		if listenErr := server.ListenAndServe(); listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			serverErr <- listenErr
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	appLogger.Info("server exited")
	return nil
}

// echoLevel maps the service log level onto echo's own logger, which only reports echo internals.
func echoLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
