package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"sc2ladder/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

// HTTPServer starts the page listener and shuts it down gracefully once the
// context is done.
type HTTPServer struct {
	Address         string
	ShutdownTimeout time.Duration
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	handler http.Handler,
) {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              h.Address,
		Handler:           handler,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g.Go(func() error {
		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger(ctx).Error("server.Shutdown", logx.Error(err))
			}
		}()

		logger(ctx).Info("http server started", slog.String("address", httpServer.Addr))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String("address", httpServer.Addr))

		return nil
	})
}
