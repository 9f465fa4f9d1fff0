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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"miles-advisor/config"
	httpLayer "miles-advisor/http"
	"miles-advisor/repository"
	"miles-advisor/service"
)

const (
	shutdownTimeout  = 10 * time.Second
	cachePingTimeout = 2 * time.Second
)

func newServeCmd(opts *rootOptions, ver string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if !cmd.Flags().Changed("log-level") && !opts.debug {
				logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, false)
			}
			if cfg.Version == "dev" && ver != "" {
				cfg.Version = ver
			}
			if opts.profile != "" {
				cfg.ProfilePath = opts.profile
			}

			valuation, err := config.LoadProfile(cfg.ProfilePath)
			if err != nil {
				return err
			}

			cache, closeCache := newCache(cmd.Context(), cfg, logger)
			defer closeCache()

			limiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			defer limiter.Stop()

			router := httpLayer.NewRouter(httpLayer.RouterDeps{
				Suite:    service.NewSuite(valuation),
				Cache:    cache,
				CacheTTL: cfg.CacheTTL,
				Limiter:  limiter,
				Logger:   logger,
				Version:  cfg.Version,
			})

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.Port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, server, logger)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "listen port (overrides MILES_PORT)")

	return cmd
}

// newCache picks Redis when MILES_REDIS_ADDR is set and reachable, the
// in-memory cache otherwise.
func newCache(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		memory := repository.NewMemoryCache()
		return memory, memory.Stop
	}

	redis := repository.NewRedisCache(cfg.RedisAddr)

	pingCtx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()
	if err := redis.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-memory cache")
		_ = redis.Close()
		memory := repository.NewMemoryCache()
		return memory, memory.Stop
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	return redis, func() {
		if err := redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

// runServer serves until ctx is cancelled or the listener fails, then
// shuts the server down gracefully.
func runServer(ctx context.Context, server *http.Server, logger zerolog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", server.Addr).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info().Msg("server exited")
	return nil
}
