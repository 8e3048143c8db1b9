package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michael-freling/dirtree/internal/config"
	"github.com/michael-freling/dirtree/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(configPath *string) *cobra.Command {
	var address string

	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory tree over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if address == "" {
				address = app.config.Server.Address
			}
			if app.config.Environment == config.EnvironmentProduction {
				gin.SetMode(gin.ReleaseMode)
			}
			httpServer := &http.Server{
				Addr:    address,
				Handler: server.NewHandler(app.logger, app.service),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				app.logger.Info("Starting a server", "address", address)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("httpServer.ListenAndServe: %w", err)
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("httpServer.Shutdown: %w", err)
				}
				app.logger.Info("Stopped a server")
				return nil
			})
			return eg.Wait()
		},
	}
	serveCommand.Flags().StringVar(&address, "address", "", "an address to listen on, overriding the configuration")
	return serveCommand
}
