package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "shelfspot/docs"
	"shelfspot/internal/config"
	"shelfspot/internal/logging"
	"shelfspot/internal/products"
	"shelfspot/internal/products/cache"
	producthttp "shelfspot/internal/products/http"
	"shelfspot/internal/products/messaging"
	"shelfspot/internal/products/repository"
	"shelfspot/internal/products/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	serviceName = "catalog"

	metricCreatedTotal  = "catalog_products_created_total"
	metricDeletedTotal  = "catalog_products_deleted_total"
	migrateSourcePrefix = "file://"
	postgresDriverName  = "postgres"
)

// store is what the catalog needs from a persistence backend.
type store interface {
	cache.Store
	Count(ctx context.Context) (int64, error)
}

// @title        Catalog API
// @version      1.0
// @description  Product catalog service with event notifications.
// @host         localhost:3001
// @BasePath     /
func main() {
	_ = godotenv.Load()

	logger := logging.New(serviceName)
	code := run(logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger) int {
	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.Error("load config", zap.Error(err))
		return 1
	}

	repo, closeRepo, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("open store", zap.String("store", cfg.Store), zap.Error(err))
		return 1
	}
	defer closeRepo()

	var catalog cache.Store = repo
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("parse redis url", zap.Error(err))
			return 1
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		catalog = cache.NewCachedStore(repo, rdb, cfg.CacheTTL, logger)
		logger.Info("product list cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	var publisher service.Publisher = messaging.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("connect rabbitmq", zap.Error(err))
			return 1
		}
		defer rabbitConn.Close()

		rp, err := messaging.NewRabbitPublisher(rabbitConn, products.EventsQueue)
		if err != nil {
			logger.Error("init publisher", zap.Error(err))
			return 1
		}
		defer rp.Close()
		publisher = rp
	} else {
		logger.Info("RABBITMQ_URL not set, catalog events disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	createdCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricCreatedTotal,
		Help: "Total number of products created",
	})
	deletedCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricDeletedTotal,
		Help: "Total number of products deleted",
	})
	reg.MustRegister(createdCounter, deletedCounter)

	svc := service.New(catalog, publisher, logger, createdCounter, deletedCounter)

	if cfg.SeedDemo {
		n, err := svc.Seed(context.Background(), products.DemoCatalog())
		if err != nil {
			logger.Error("seed demo catalog", zap.Error(err))
			return 1
		}
		logger.Info("demo catalog seeded", zap.Int("products", n))
	}
	if total, err := repo.Count(context.Background()); err == nil {
		logger.Info("catalog ready", zap.String("store", cfg.Store), zap.Int64("products", total))
	}

	handler := producthttp.NewHandler(svc, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(producthttp.CORS(cfg.CORSAllowedOrigins))
	router.Use(producthttp.RequestIDMiddleware())
	router.Use(producthttp.AccessLogMiddleware(logger))
	router.Use(producthttp.NewMetrics(reg).Middleware(serviceName))
	producthttp.RegisterRoutes(router, handler, catalog, reg)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog service started", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return 1
	}
	logger.Info("catalog service stopped")
	return 0
}

func openStore(cfg config.Catalog, logger *zap.Logger) (store, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemory(), func() {}, nil
	}

	if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open(postgresDriverName, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.DBPingTimeout)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return repository.NewPostgres(db), func() { _ = db.Close() }, nil
}

func runMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New(migrateSourcePrefix+migrationsPath, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
