package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greendrake/estate-seeder/internal/auth"
	"greendrake/estate-seeder/internal/cache"
	"greendrake/estate-seeder/internal/config"
	"greendrake/estate-seeder/internal/generator"
	"greendrake/estate-seeder/internal/services"
	"greendrake/estate-seeder/internal/store"
)

var (
	accountsFlag = flag.Int("accounts", -1, "Number of accounts to create (overrides SEED_ACCOUNT_COUNT)")
	listingsFlag = flag.Int("listings", -1, "Number of listings to create (overrides SEED_LISTING_COUNT)")
	seedFlag     = flag.Int64("seed", -1, "Random seed for a reproducible run (overrides SEED_RANDOM_SEED, 0 picks one)")
	backendFlag  = flag.String("backend", "", "Store backend: 'mongo' or 'bolt' (overrides STORE_BACKEND)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		var fatal *services.FatalBatchError
		if errors.As(err, &fatal) {
			log.Printf("Seeding aborted: %v", fatal)
		} else {
			log.Printf("Seeding failed: %v", err)
		}
		os.Exit(1)
	}
}

// run seeds the configured store once. Every resource it opens is released
// before it returns, so main can exit with the right status.
func run() error {
	cfg, err := config.Load(config.Overrides{
		Accounts: *accountsFlag,
		Listings: *listingsFlag,
		Seed:     *seedFlag,
		Backend:  *backendFlag,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Printf("Error closing %s store: %v", cfg.StoreBackend, err)
		}
	}()
	writes := store.WithRateLimit(st, cfg.MaxWritesPerSecond)

	rng, seed := generator.NewSource(cfg.RandomSeed)
	log.Printf("Using random seed %d", seed)

	media := generator.Media{AvatarBaseURL: cfg.AvatarBaseURL, ImageBaseURL: cfg.ImageBaseURL}
	accountProvisioner := services.NewAccountProvisioner(writes, auth.NewBcryptHasher(cfg.BcryptCost), media, services.AccountProvisionerConfig{
		Password:    cfg.Password,
		MaxAttempts: cfg.AccountMaxAttempts,
		RetryDelay:  cfg.RetryDelay,
	})
	listingProvisioner := services.NewListingProvisioner(writes, rng, media, nil)

	seedService := services.NewSeedService(writes, rng, accountProvisioner, listingProvisioner, services.SeedConfig{
		AccountCount: cfg.AccountCount,
		ListingCount: cfg.ListingCount,
		Seed:         seed,
		Identity: generator.IdentityConfig{
			EmailDomain: cfg.EmailDomain,
			MaxAttempts: cfg.IdentityMaxAttempts,
		},
	}, os.Stdout)

	if cfg.RedisAddr != "" {
		redisClient, err := cache.ConnectRedis(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			log.Printf("WARNING: report publishing disabled: %v", err)
		} else {
			defer func() {
				if err := cache.DisconnectRedis(redisClient); err != nil {
					log.Printf("Error disconnecting from Redis: %v", err)
				}
			}()
			seedService.SetReporter(cache.NewReportPublisher[services.Summary](redisClient, cfg.ReportKey, cfg.ReportHistory))
		}
	}

	if _, err := seedService.SeedDatabase(ctx); err != nil {
		return err
	}
	fmt.Println("Database seeded successfully.")
	return nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendBolt:
		log.Printf("Using bolt store at %s", cfg.BoltPath)
		return store.OpenBolt(cfg.BoltPath)
	default:
		return store.OpenMongo(cfg.MongoURI, cfg.MongoDbName)
	}
}
