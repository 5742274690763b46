package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaclass/internal/api"
	"github.com/dmitrymomot/uaclass/pkg/httpserver"
	"github.com/dmitrymomot/uaclass/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Long: `Serve the classifier over HTTP.

Configuration is read from the environment: APP_ENV, LOG_LEVEL, LOG_FORMAT,
HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and
HTTP_SHUTDOWN_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			router := api.NewRouter(api.RouterOptions{Logger: log})

			if err := srv.Run(cmd.Context(), router); err != nil {
				log.Error("server stopped with error", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
