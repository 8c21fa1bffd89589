package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/inbound/http"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *globalFlags) *cobra.Command {
	var (
		addr    string
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the brandaudit HTTP API",
		Long:  "Start a JSON HTTP API for brand detection, suggestions and audits. Stops on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, flags, appOptions{store: !noStore, stderr: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			api := httpadapter.New(a.detect, a.audits, a.batch(), a.logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			a.logger.Info("listening", "addr", addr)

			select {
			case <-ctx.Done():
				a.logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutting down: %w", err)
				}
				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not save audits to history")

	return cmd
}
