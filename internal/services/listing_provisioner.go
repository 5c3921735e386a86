package services

import (
	"context"
	"time"

	"greendrake/estate-seeder/internal/generator"
	"greendrake/estate-seeder/internal/models"
	"greendrake/estate-seeder/internal/store"
)

// ListingOutcome is the tagged result of provisioning one listing. Listings
// are never OutcomeFatal; a failure only costs the one listing.
type ListingOutcome struct {
	Kind       OutcomeKind
	Listing    *models.Listing
	Attributes models.PropertyAttributes
	Err        error
}

// IListingProvisioner persists one listing per call.
type IListingProvisioner interface {
	Provision(ctx context.Context, index int, owners []models.Account) ListingOutcome
}

// listingProvisioner implements IListingProvisioner.
type listingProvisioner struct {
	store store.Store
	rng   generator.Source
	media generator.Media
	now   func() time.Time
}

// NewListingProvisioner creates a new ListingProvisioner.
func NewListingProvisioner(st store.Store, rng generator.Source, media generator.Media, now func() time.Time) IListingProvisioner {
	if now == nil {
		now = time.Now
	}
	return &listingProvisioner{store: st, rng: rng, media: media, now: now}
}

// Provision synthesizes and persists one listing owned by a random account
// from owners. It makes a single attempt.
func (p *listingProvisioner) Provision(ctx context.Context, index int, owners []models.Account) ListingOutcome {
	fail := func(attrs models.PropertyAttributes, err error) ListingOutcome {
		return ListingOutcome{
			Kind:       OutcomeRetryable,
			Attributes: attrs,
			Err:        &TransientProvisioningError{Kind: RecordListing, Index: index, Attempt: 1, Err: err},
		}
	}

	attrs := generator.SynthesizeAttributes(p.rng)
	if len(owners) == 0 {
		return fail(attrs, ErrNoAccounts)
	}

	listingType := generator.DrawListingType(p.rng)
	quote := generator.QuotePrice(p.rng, listingType, attrs.Bedrooms, attrs.Luxury)
	owner := owners[p.rng.IntN(len(owners))]

	listing := &models.Listing{
		Name:          generator.ComposeName(p.rng, attrs.Style, listingType),
		Description:   generator.ComposeDescription(p.rng, attrs),
		Address:       attrs.Address,
		RegularPrice:  quote.RegularPrice,
		DiscountPrice: quote.DiscountPrice,
		Bathrooms:     attrs.Bathrooms,
		Bedrooms:      attrs.Bedrooms,
		Furnished:     generator.Coin(p.rng),
		Parking:       generator.Coin(p.rng),
		Type:          listingType,
		Offer:         quote.HasOffer,
		ImageURLs:     p.media.ImageURLs(p.rng, attrs.Luxury),
		UserRef:       owner.ID.Hex(),
	}
	listing.Touch(p.now().UTC())

	id, err := p.store.CreateListing(ctx, listing)
	if err != nil {
		return fail(attrs, err)
	}
	listing.SetID(id)
	return ListingOutcome{Kind: OutcomeCreated, Listing: listing, Attributes: attrs}
}
