package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/beacon/pkg/cli/config"
	controller "github.com/m-mizutani/beacon/pkg/controller/http"
	"github.com/m-mizutani/beacon/pkg/domain/model"
	"github.com/m-mizutani/beacon/pkg/usecase"
	"github.com/m-mizutani/beacon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		releasesCfg config.Releases
		sentryCfg   config.Sentry
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, releasesCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			logger.Info("Starting beacon server",
				slog.String("addr", serverCfg.Addr),
				slog.String("releases_file", releasesCfg.File),
				slog.Any("sentry", sentryCfg),
			)

			directory, err := loadDirectory(ctx, &releasesCfg)
			if err != nil {
				return err
			}

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			// Create use cases
			releaseUC := usecase.NewRelease(directory)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				releaseUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithSentry(sentryCfg.Enabled()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error")
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// loadDirectory builds the release directory and checks its order. Order
// problems only produce a warning unless strict order is requested.
func loadDirectory(ctx context.Context, cfg *config.Releases) (*model.ReleaseDirectory, error) {
	logger := logging.From(ctx)

	directory, err := cfg.Load()
	if err != nil {
		return nil, err
	}

	if err := directory.CheckOrder(); err != nil {
		if cfg.StrictOrder {
			return nil, err
		}
		logger.Warn("Release directory order does not match published_at, serving head as latest",
			slog.Any("error", err),
		)
	}

	latest, ok := directory.Latest()
	logger.Info("Release directory loaded",
		slog.Int("count", directory.Len()),
		slog.String("latest", latest.Version),
		slog.Bool("empty", !ok),
	)

	return directory, nil
}
