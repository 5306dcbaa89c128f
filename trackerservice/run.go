// Package trackerservice boots the mood tracker HTTP service.
package trackerservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindful-labs/mood-tracker/internal/api"
	"github.com/mindful-labs/mood-tracker/internal/config"
	"github.com/mindful-labs/mood-tracker/internal/factory"
	"github.com/mindful-labs/mood-tracker/internal/health"
	"github.com/mindful-labs/mood-tracker/internal/logger"
	"github.com/mindful-labs/mood-tracker/internal/services"
	"github.com/mindful-labs/mood-tracker/internal/store"
	"github.com/mindful-labs/mood-tracker/internal/web"
)

// Run starts the mood tracker HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("mood-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Mood service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := initStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	checker := startHealthChecker(ctx, cfg, log, st)
	router := buildRouter(st, checker)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func initStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("Store adapter unavailable")
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		log.Error().Err(err).Msg("Store initialization failed")
		return nil, err
	}
	return st, nil
}

func buildRouter(st store.Store, checker *health.StoreChecker) http.Handler {
	entries := api.NewEntryHandler(services.NewEntryService(st))
	return api.NewRouter(entries, api.NewHealthHandler(checker), web.Handler())
}

func startHealthChecker(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store) *health.StoreChecker {
	probeTimeout := time.Duration(cfg.ProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	checker := health.NewStoreChecker(st, log, probeTimeout)
	go checker.Start(ctx, interval)
	return checker
}

func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
