package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/fixly/fixly-api/config"
	httpx "github.com/fixly/fixly-api/internal/http"
	"github.com/fixly/fixly-api/internal/service"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Postings    *service.PostingService
	Bids        *service.BidService
	Engagements *service.EngagementService
	Auth        *service.AuthService
}

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   config.HTTPConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunHTTPServer builds the router, serves until SIGINT/SIGTERM or a fatal
// listener error, then drains in-flight requests within the shutdown
// timeout.
func RunHTTPServer(ctx context.Context, cfg HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Postings:    cfg.Services.Postings,
		Bids:        cfg.Services.Bids,
		Engagements: cfg.Services.Engagements,
		Auth:        cfg.Services.Auth,
		Logger:      logger,
	})

	addr := cfg.Config.Addr
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Config.ReadTimeout,
		WriteTimeout: cfg.Config.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Config.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
