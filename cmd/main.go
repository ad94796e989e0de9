package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dentalcare360/storefront/config"
	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/internal/catalog"
	"github.com/dentalcare360/storefront/internal/container"
	"github.com/dentalcare360/storefront/internal/domain/repository"
	kvinfra "github.com/dentalcare360/storefront/internal/infrastructure/kv"
	"github.com/dentalcare360/storefront/internal/interface/middleware"
	"github.com/dentalcare360/storefront/internal/router"
	"github.com/dentalcare360/storefront/pkg/helpers"
	"github.com/dentalcare360/storefront/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	store, cleanup := buildKVStore(ctx, cfg, logger)
	defer cleanup()
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetKV(store)

	// Stores hydrate from persisted state at construction
	cat := catalog.Default()
	cart := application.NewCartStore(ctx, store, logger)
	accounts := application.NewAccountStore(ctx, store, logger, cfg.SimLatency)
	checkout := application.NewCheckout(cart, accounts, logger)

	container.SetCatalog(cat)
	container.SetCartStore(cart)
	container.SetAccountStore(accounts)
	container.SetCheckout(checkout)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// buildKVStore selects the persisted key-value driver from configuration and
// returns it with a cleanup function for the underlying client.
func buildKVStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.KVStore, func()) {
	switch cfg.StorageDriver {
	case "postgres":
		pool, err := kvinfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration failed: %v", err)
		}
		container.SetPGPool(pool)
		return kvinfra.NewPostgresStore(pool, cfg.KeyPrefix, logger), pool.Close
	case "memory":
		logger.Warn("memory storage driver selected, records last for the process lifetime only")
		return kvinfra.NewMemoryStore(), func() {}
	default:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		container.SetRedis(rdb)
		return kvinfra.NewRedisStore(rdb, cfg.KeyPrefix, logger), func() { _ = rdb.Close() }
	}
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
