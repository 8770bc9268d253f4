package main

import (
	"context"
	"flag"
	"log"

	"github.com/ecap-org/ecap-directory/config"
	"github.com/ecap-org/ecap-directory/internal/storage/postgres"
	"github.com/ecap-org/ecap-directory/internal/storage/seed"
)

// RunMigrate applies the schema and optionally seeds the catalog and admin.
func RunMigrate(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	withSeed := fs.Bool("seed", false, "seed the default admin, countries and industries")
	demo := fs.Bool("demo", false, "also insert the demo projects (implies -seed)")
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Store.Driver != config.DriverPostgres {
		log.Fatalf("migrate needs STORE_DRIVER=%s", config.DriverPostgres)
	}

	ctx := context.Background()
	log.Printf("migrate: connecting to %s", postgres.Redact(postgres.DSN(&cfg.Database)))

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("migrate: schema is up to date")

	if !*withSeed && !*demo && !cfg.Seed.Demo {
		return
	}

	res, err := postgres.Seed(ctx, db, seed.Admin{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
	}, *demo || cfg.Seed.Demo)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seed: countries=%d industries=%d admin_created=%t projects=%d",
		res.Countries, res.Industries, res.AdminCreated, res.Projects)
}
