package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/salon-api/internal/config"
	"github.com/jwalitptl/salon-api/pkg/logger"
	"github.com/jwalitptl/salon-api/internal/handler"
	accountHandler "github.com/jwalitptl/salon-api/internal/handler/account"
	authHandler "github.com/jwalitptl/salon-api/internal/handler/auth"
	catalogHandler "github.com/jwalitptl/salon-api/internal/handler/catalog"
	"github.com/jwalitptl/salon-api/internal/middleware"
	"github.com/jwalitptl/salon-api/internal/repository/docstore"
	"github.com/jwalitptl/salon-api/internal/router"
	accountService "github.com/jwalitptl/salon-api/internal/service/account"
	authService "github.com/jwalitptl/salon-api/internal/service/auth"
	catalogService "github.com/jwalitptl/salon-api/internal/service/catalog"
	"github.com/jwalitptl/salon-api/internal/store"
	memorystore "github.com/jwalitptl/salon-api/internal/store/memory"
	pgstore "github.com/jwalitptl/salon-api/internal/store/postgres"
	redisstore "github.com/jwalitptl/salon-api/internal/store/redis"
	"github.com/jwalitptl/salon-api/pkg/clock"
	"github.com/jwalitptl/salon-api/pkg/metrics"
)

func main() {
	logg := logger.NewLogger(nil)
	// Route the global logger through the same writer so middleware logs
	// match.
	log.Logger = *logg.Zerolog()

	cfg, err := config.LoadConfig()
	if err != nil {
		logg.Fatal(err, "failed to load configuration")
	}

	m := metrics.NewMetrics("salon", prometheus.DefaultRegisterer)

	docs, err := newStore(cfg)
	if err != nil {
		logg.Fatal(err, "failed to open document store")
	}
	defer docs.Close()
	docs = store.WithMetrics(docs, m)

	base := docstore.NewBaseRepository(docs, clock.System())
	catalogRepo := docstore.NewCatalogRepository(base)
	accountRepo := docstore.NewAccountRepository(base)

	catalogSvc := catalogService.NewService(catalogRepo, cfg.Catalog.CacheTTL, m)
	authSvc := authService.NewService(accountRepo, m)
	accountSvc := accountService.NewService(accountRepo)

	if err := handler.RegisterValidations(); err != nil {
		logg.Fatal(err, "failed to register validations")
	}

	h := handler.NewHandler(docs)
	r := router.NewRouter(
		authHandler.NewHandler(authSvc),
		catalogHandler.NewHandler(catalogSvc),
		accountHandler.NewHandler(accountSvc),
		h,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "salon_http",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		logg.Info("starting server", "port", cfg.Server.Port, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatal(err, "server forced to shutdown")
	}

	logg.Info("server exited properly")
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		db, err := pgstore.NewDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		return pgstore.NewStore(db), nil
	case "redis":
		return redisstore.NewStore(redisstore.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
	case "memory":
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
