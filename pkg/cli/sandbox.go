package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/cli/config"
	controller "github.com/jimmyre420/overseerr-bulk-user-modify/pkg/controller/http"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSandbox() *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:  "sandbox",
		Usage: "Serve an in-memory Overseerr API to rehearse a run",
		Flags: serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting Overseerr sandbox", slog.Any("server", serverCfg))

			store := repository.NewMemory()
			if err := repository.Seed(ctx, store, serverCfg.Users); err != nil {
				return err
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, store,
				controller.WithAPIKey(serverCfg.APIKey),
				controller.WithVersion(serverCfg.Version),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create sandbox server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
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
				return goerr.Wrap(err, "sandbox server failed", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
