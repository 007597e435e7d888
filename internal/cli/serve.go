package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/askern/polycipher/internal/api"
	"github.com/askern/polycipher/pkg/level"
	"github.com/askern/polycipher/pkg/session"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		levelsPath string
		sessionTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the PolyCipher HTTP API",
		Long: `Run the PolyCipher HTTP API.

Serves the cipher engine over JSON on the given address. Sessions are held
in memory and expire after the session TTL. A custom level file overrides
the built-in difficulty tiers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts := []api.Option{api.WithSessionTTL(sessionTTL)}
			if levelsPath != "" {
				set, err := level.Load(levelsPath)
				if err != nil {
					return err
				}
				logger.Info("loaded custom levels", "path", levelsPath, "count", set.Len())
				opts = append(opts, api.WithLevels(set))
			}

			store := session.NewMemoryStore()
			server := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(store, logger, opts...).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Sweep expired sessions so abandoned games do not accumulate.
			go func() {
				ticker := time.NewTicker(10 * time.Minute)
				defer ticker.Stop()
				for {
					select {
					case <-cmd.Context().Done():
						return
					case <-ticker.C:
						if err := store.Cleanup(cmd.Context()); err != nil {
							logger.Warn("session cleanup failed", "err", err)
						}
					}
				}
			}()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&levelsPath, "levels", "", "path to a custom levels TOML file")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", session.DefaultTTL, "session lifetime")
	return cmd
}
