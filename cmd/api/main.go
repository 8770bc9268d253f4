package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ecap-org/ecap-directory/config"
	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/bootstrap"
	"github.com/ecap-org/ecap-directory/internal/catalog/cache"
	catalogdomain "github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/logging"
	"github.com/ecap-org/ecap-directory/internal/storage/memory"
	"github.com/ecap-org/ecap-directory/internal/storage/seed"
	uploadsvc "github.com/ecap-org/ecap-directory/internal/uploads/service"
	uploadstorage "github.com/ecap-org/ecap-directory/internal/uploads/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.SetLevel(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		StoreDriver:    cfg.Store.Driver,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		UploadDir:      cfg.Upload.Dir,
		UploadPath:     cfg.Upload.PublicPath,
	}

	var repos bootstrap.Repositories
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
			DSN:      cfg.Database.DSN,
			MaxConns: int32(cfg.Database.MaxConns),
			MinConns: int32(cfg.Database.MinConns),
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		deps.DB = pool
		repos = bootstrap.PostgresRepositories(pool)
		log.Println("Connected to PostgreSQL")
	case config.DriverMemory:
		store := memory.New()
		admin := seed.Admin{
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Name:     cfg.Seed.AdminName,
		}
		if err := store.Seed(ctx, admin, cfg.Seed.Demo); err != nil {
			log.Fatalf("Failed to seed memory store: %v", err)
		}
		repos = bootstrap.MemoryRepositories(store)
		log.Printf("Using in-memory store (admin %s)", admin.Email)
	}

	var listCache catalogdomain.ListCache = cache.Noop{}
	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Printf("Warning: Redis unavailable, catalog cache disabled: %v", err)
	} else if rdb != nil {
		defer rdb.Close()
		listCache = cache.NewRedisCache(rdb, cfg.Redis.CatalogTTL)
		log.Printf("Catalog cache enabled (ttl %s)", cfg.Redis.CatalogTTL)
	}

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to configure tokens: %v", err)
	}

	blobs, err := uploadstorage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	deps.Tokens = tokens
	deps.AdminLookup = repos.Admins
	deps.Services = bootstrap.NewServices(repos, bootstrap.ServiceOptions{
		Tokens:           tokens,
		Cache:            listCache,
		Blobs:            blobs,
		UploadPublicPath: cfg.Upload.PublicPath,
		UploadMaxBytes:   cfg.Upload.MaxBytes,
	})

	var sweeper *cron.Cron
	if cfg.Upload.SweepSchedule != "" {
		sw := uploadsvc.NewSweeper(blobs, deps.Services.Projects, cfg.Upload.PublicPath, cfg.Upload.SweepGrace)
		sweeper, err = sw.Start(cfg.Upload.SweepSchedule)
		if err != nil {
			log.Fatalf("Failed to start upload sweeper: %v", err)
		}
		log.Printf("Upload sweeper scheduled: %s", cfg.Upload.SweepSchedule)
	}

	router := bootstrap.BuildRouter(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Starting %s v%s on port %s (%s)", cfg.App.ServiceName, cfg.App.Version, cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if sweeper != nil {
		<-sweeper.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
