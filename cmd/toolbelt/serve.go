package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/aretw0/toolbelt"
	httpAdapter "github.com/aretw0/toolbelt/pkg/adapters/http"
	"github.com/aretw0/toolbelt/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/toolbelt/pkg/adapters/redis"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/aretw0/toolbelt/pkg/timing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 5 * time.Second
	summaryWindow   = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the tool registry as a JSON API with an OpenAPI document at /openapi.json.
When metrics are enabled in the configuration, Prometheus metrics are served at /metrics.
When redis.addr is set, request summaries are coordinated across replicas through Redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		var kitOpts []toolbelt.Option
		var handlerOpts []httpAdapter.Option
		if cfg.Metrics.Enabled {
			promReg := prometheus.NewRegistry()
			promReg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			kitOpts = append(kitOpts, toolbelt.WithMetrics(promReg))
			handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))
		}

		kit, err := newKit(kitOpts...)
		if err != nil {
			return err
		}

		gate, closeGate, err := openGate(cmd.Context())
		if err != nil {
			return err
		}
		defer closeGate()

		var served atomic.Int64
		summary := timing.Throttle(func(n int64) {
			logger.Info("requests served", "total", n)
		}, summaryWindow, append(kit.TimingOptions("request-summary"), timing.WithGate(gate, "request-summary"))...)
		defer summary.Cancel()

		handlerOpts = append(handlerOpts,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithVersion(toolbelt.Version),
		)
		handler := httpAdapter.NewHandler(kit.Registry(), handlerOpts...)

		srv := &http.Server{
			Addr: addr,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handler.ServeHTTP(w, r)
				summary.Call(served.Add(1))
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting toolbelt server", "addr", srv.Addr, "tools", len(kit.Registry().List()))
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("toolbelt server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides http.addr)")
}

// openGate returns the Redis gate when redis.addr is configured and an in-memory gate otherwise.
func openGate(ctx context.Context) (ports.Gate, func(), error) {
	if cfg.Redis.Addr == "" {
		return memory.NewGate(), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	gate := redisAdapter.NewGate(client, redisAdapter.WithPrefix(cfg.Redis.Prefix))
	logger.Info("redis gate enabled", "addr", cfg.Redis.Addr, "owner", gate.Owner())
	return gate, func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "err", err)
		}
	}, nil
}
