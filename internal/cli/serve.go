package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/peptikit/peptigraph/internal/server"
	"github.com/peptikit/peptigraph/internal/server/history"
	"github.com/peptikit/peptigraph/pkg/cache"
	"github.com/peptikit/peptigraph/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheKind string // "file", "redis", or "none"
	redisAddr string // redis address for --cache redis
	mongoURI  string // mongodb connection string; empty keeps history in memory
}

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		cacheKind: "file",
		redisAddr: "localhost:6379",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the peptigraph HTTP API server",
		Long: `Run the peptigraph HTTP API server.

The server exposes POST /v1/convert for conversions, GET /v1/convert/{id}
to replay stored results, and GET /healthz for liveness checks.
Conversion history is kept in memory unless --mongo is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", opts.cacheKind, "result cache backend: file (default), redis, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", opts.redisAddr, "redis address for --cache redis")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "mongodb connection string for persistent history")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := serverCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	store, err := serverHistory(ctx, opts)
	if err != nil {
		return fmt.Errorf("init history: %w", err)
	}
	defer store.Close(context.Background())

	keyer := cache.NewScopedKeyer(nil, "v1:")
	srv := server.New(server.Config{
		Runner:  pipeline.NewRunner(c, keyer, logger),
		History: store,
		Logger:  logger,
	})

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", opts.addr, "cache", opts.cacheKind)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func serverCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, or none)", opts.cacheKind)
	}
}

func serverHistory(ctx context.Context, opts *serveOpts) (history.Store, error) {
	if opts.mongoURI == "" {
		return history.NewMemoryStore(), nil
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return history.NewMongoStore(connectCtx, history.MongoConfig{URI: opts.mongoURI})
}
