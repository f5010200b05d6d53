package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/config"
	"github.com/alphamugerwa/authorshaven/internal/db"
	httpx "github.com/alphamugerwa/authorshaven/internal/http"
	"github.com/alphamugerwa/authorshaven/internal/observability"
	"github.com/alphamugerwa/authorshaven/internal/ratelimit"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing

	otelCtx, otelCancel := config.WithTimeout(5 * time.Second)
	shutdownTracer, err := observability.InitTracer(otelCtx, "authorshaven-api", cfg.OTLPEndpoint)
	otelCancel()

	if err != nil {
		log.Error("tracer init failed", "err", err)
		os.Exit(1)
	}

	// database

	pool, err := db.NewPool(cfg.DBURL, 5)

	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	migrateCtx, migrateCancel := config.WithTimeout(10 * time.Second)
	defer migrateCancel()

	err = db.Migrate(migrateCtx, pool)

	if err != nil {
		log.Error("schema setup failed", "err", err)
		os.Exit(1)
	}

	// development fixtures only

	if cfg.Env == "dev" {
		err = db.EnsureSeedArticles(migrateCtx, pool)

		if err != nil {
			log.Error("seeding failed", "err", err)
			os.Exit(1)
		}
	}

	// metrics

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	// rate limiting: shared redis window when configured, per-process otherwise

	var limitStore ratelimit.Store = ratelimit.NewMemoryStore()

	if cfg.RedisAddr != "" {
		redisStore := ratelimit.NewRedisStore(ratelimit.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, pingCancel := config.WithTimeout(2 * time.Second)
		err = redisStore.Ping(pingCtx)
		pingCancel()

		if err != nil {
			log.Error("redis unavailable, falling back to in-memory rate limiting", "err", err)
		} else {
			limitStore = redisStore
			defer redisStore.Close()
		}
	}

	router := httpx.NewRouter(log, pool, cfg, prom, limitStore)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)
			return
		}

		err = shutdownTracer(ctx)

		if err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
