package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pet-adoption/internal/adapters/catalog/yamlfile"
	"pet-adoption/internal/router"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP browse API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, os.Stdout)
			if err != nil {
				return err
			}
			defer a.Close()

			r := router.NewRouter(router.Options{
				Logger:           a.log,
				DB:               a.db,
				Driver:           a.cfg.DB.Driver,
				Catalog:          a.catalog,
				FavoritesKey:     a.cfg.Favorites.Key,
				FavoritesTimeout: a.cfg.Favorites.Timeout,
			})

			g, gctx := errgroup.WithContext(ctx)
			srv := newHTTPServer(gctx, a.cfg.HTTP.Addr, r)

			g.Go(func() error {
				a.log.Info("starting server", map[string]any{
					"addr":    srv.Addr,
					"storage": storageName(a),
				})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})

			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				a.log.Info("shutting down server", nil)
				return srv.Shutdown(shutdownCtx)
			})

			if a.cfg.Catalog.Watch {
				w := yamlfile.NewWatcher(a.cfg.Catalog.File, a.catalog, a.log)
				g.Go(func() error {
					return w.Run(gctx)
				})
			}

			return g.Wait()
		},
	}
}

// newHTTPServer deriva el contexto de cada request de base: al cancelarlo, los
// streams SSE abiertos terminan y Shutdown no queda esperando conexiones largas.
func newHTTPServer(base context.Context, addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:        addr,
		Handler:     h,
		ReadTimeout: 5 * time.Second,
		// sin WriteTimeout: /favorites/stream es una conexión larga
		IdleTimeout: 60 * time.Second,
		BaseContext: func(net.Listener) context.Context { return base },
	}
}

func storageName(a *app) string {
	if a.db != nil {
		return a.cfg.DB.Driver
	}
	return "memory"
}
