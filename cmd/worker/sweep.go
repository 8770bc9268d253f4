package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/ecap-org/ecap-directory/config"
	"github.com/ecap-org/ecap-directory/internal/bootstrap"
	projectrepo "github.com/ecap-org/ecap-directory/internal/projects/repository"
	uploadsvc "github.com/ecap-org/ecap-directory/internal/uploads/service"
	uploadstorage "github.com/ecap-org/ecap-directory/internal/uploads/storage"
)

// RunSweep deletes unreferenced uploads once and exits.
func RunSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	grace := fs.Duration("grace", 0, "minimum age of a deletable upload (default UPLOAD_SWEEP_GRACE)")
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Store.Driver != config.DriverPostgres {
		log.Fatalf("sweep needs STORE_DRIVER=%s", config.DriverPostgres)
	}
	if *grace <= 0 {
		*grace = cfg.Upload.SweepGrace
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN, MaxConns: 2})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	defer pool.Close()

	blobs, err := uploadstorage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	sw := uploadsvc.NewSweeper(blobs, projectrepo.NewProjectRepository(pool), cfg.Upload.PublicPath, *grace)
	n, err := sw.Sweep(ctx)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	log.Printf("sweep: removed %d orphaned uploads from %s", n, cfg.Upload.Dir)
}
