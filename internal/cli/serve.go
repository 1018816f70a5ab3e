package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/httpapi"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server receives a stop signal.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command, which runs the HTTP arbitration
// server until the command context is cancelled.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP arbitration server",
		Long: `Serve exposes the arrangement engine over HTTP. The API is
stateless: every request carries a full layout and every response returns
the arbitrated result.

Endpoints:
  GET  /v1/healthz
  POST /v1/layout/compact
  POST /v1/layout/bounds
  POST /v1/layout/move
  POST /v1/layout/classify
  POST /v1/layout/drop

Example:
  gridarb serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewServer(logger).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("Listening on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-c.Context().Done():
				logger.Info("Shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
