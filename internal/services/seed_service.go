package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"greendrake/estate-seeder/internal/generator"
	"greendrake/estate-seeder/internal/models"
	"greendrake/estate-seeder/internal/store"
)

// progressEvery controls how often per-record progress is logged.
const progressEvery = 25

// Reporter receives the summary of a successful run.
type Reporter interface {
	Publish(ctx context.Context, summary *Summary) error
}

// ISeedService runs a complete seed batch.
type ISeedService interface {
	SeedDatabase(ctx context.Context) (*Summary, error)
	SetReporter(r Reporter)
}

// SeedConfig sizes a batch.
type SeedConfig struct {
	AccountCount int
	ListingCount int
	Seed         uint64 // reported only; the Source is already seeded
	Identity     generator.IdentityConfig
}

// seedService implements ISeedService.
type seedService struct {
	store    store.Store
	rng      generator.Source
	accounts IAccountProvisioner
	listings IListingProvisioner
	reporter Reporter
	out      io.Writer
	cfg      SeedConfig
}

// NewSeedService creates a new SeedService. The store is not closed by the service.
func NewSeedService(st store.Store, rng generator.Source, accounts IAccountProvisioner, listings IListingProvisioner, cfg SeedConfig, out io.Writer) ISeedService {
	if out == nil {
		out = os.Stdout
	}
	return &seedService{store: st, rng: rng, accounts: accounts, listings: listings, cfg: cfg, out: out}
}

// SetReporter sets where the final summary is published. nil disables publishing.
func (s *seedService) SetReporter(r Reporter) {
	s.reporter = r
}

// SeedDatabase clears the store, provisions accounts then listings, and reports
// summary statistics. Any account that cannot be created aborts the run with a
// *FatalBatchError before the listing phase starts. Listings that fail are
// logged and skipped.
func (s *seedService) SeedDatabase(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:             uuid.NewString(),
		Seed:              s.cfg.Seed,
		StartedAt:         time.Now().UTC(),
		AccountsRequested: s.cfg.AccountCount,
		ListingsRequested: s.cfg.ListingCount,
		SkippedListings:   []int{},
	}
	fmt.Fprintf(s.out, "Seed run %s: %d accounts, %d listings (seed %d)\n",
		summary.RunID, s.cfg.AccountCount, s.cfg.ListingCount, s.cfg.Seed)

	if err := s.reset(ctx, summary); err != nil {
		return nil, err
	}

	accounts, err := s.provisionAccounts(ctx)
	if err != nil {
		return nil, err
	}
	summary.AccountsCreated = len(accounts)
	fmt.Fprintf(s.out, "Created %d accounts\n", len(accounts))

	listings, err := s.provisionListings(ctx, accounts, summary)
	if err != nil {
		return nil, err
	}
	summary.addListingStats(listings)
	summary.Duration = time.Since(summary.StartedAt)

	summary.Print(s.out)

	if s.reporter != nil {
		if err := s.reporter.Publish(ctx, summary); err != nil {
			log.Printf("WARNING: failed to publish seed report: %v", err)
		}
	}
	return summary, nil
}

func (s *seedService) reset(ctx context.Context, summary *Summary) error {
	var err error
	if summary.DeletedAccounts, err = s.store.DeleteAllAccounts(ctx); err != nil {
		return &FatalBatchError{Phase: PhaseReset, Err: err}
	}
	if summary.DeletedListings, err = s.store.DeleteAllListings(ctx); err != nil {
		return &FatalBatchError{Phase: PhaseReset, Err: err}
	}
	fmt.Fprintf(s.out, "Cleared %d accounts and %d listings\n", summary.DeletedAccounts, summary.DeletedListings)
	return nil
}

// provisionAccounts owns the used-identity sets for the duration of the phase.
func (s *seedService) provisionAccounts(ctx context.Context) ([]models.Account, error) {
	usernames, emails := generator.NewUsedSet(), generator.NewUsedSet()
	allocator := generator.NewIdentityAllocator(s.rng, usernames, emails, s.cfg.Identity)

	accounts := make([]models.Account, 0, s.cfg.AccountCount)
	for i := 0; i < s.cfg.AccountCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, &FatalBatchError{Phase: PhaseAccounts, Index: i, Err: err}
		}
		outcome := s.accounts.Provision(ctx, i, allocator)
		if outcome.Kind != OutcomeCreated {
			return nil, &FatalBatchError{Phase: PhaseAccounts, Index: i, Err: outcome.Err}
		}
		accounts = append(accounts, *outcome.Account)
		if (i+1)%progressEvery == 0 {
			log.Printf("Accounts: %d/%d", i+1, s.cfg.AccountCount)
		}
	}
	return accounts, nil
}

func (s *seedService) provisionListings(ctx context.Context, owners []models.Account, summary *Summary) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, s.cfg.ListingCount)
	for i := 0; i < s.cfg.ListingCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, &FatalBatchError{Phase: PhaseListings, Index: i, Err: err}
		}
		outcome := s.listings.Provision(ctx, i, owners)
		if outcome.Kind != OutcomeCreated {
			log.Printf("Skipping listing %d: %v", i, outcome.Err)
			summary.SkippedListings = append(summary.SkippedListings, i)
			continue
		}
		listings = append(listings, *outcome.Listing)
		if (i+1)%progressEvery == 0 {
			log.Printf("Listings: %d/%d", i+1, s.cfg.ListingCount)
		}
	}
	return listings, nil
}
