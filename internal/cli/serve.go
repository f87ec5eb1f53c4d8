package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"employee-tracker/internal/httpapi"
	"employee-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker operations as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.withService(func(svc *service.TrackerService) error {
				server := httpapi.NewServer(a.cfg.Addr, httpapi.NewHandler(svc, a.logger), a.logger)

				errCh := make(chan error, 1)
				go func() {
					a.logger.Info("starting server", "addr", a.cfg.Addr)
					errCh <- server.ListenAndServe()
				}()

				select {
				case err := <-errCh:
					if err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("server failed: %w", err)
					}
					return nil
				case <-ctx.Done():
				}

				a.logger.Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	return cmd
}
