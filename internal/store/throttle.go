package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"

	"greendrake/estate-seeder/internal/models"
)

// throttledStore limits create calls to a token-bucket rate. Resets are not limited.
type throttledStore struct {
	Store
	limiter *rate.Limiter
}

// WithRateLimit wraps s so that at most perSecond creates happen each second.
// A non-positive rate returns s unchanged.
func WithRateLimit(s Store, perSecond float64) Store {
	if perSecond <= 0 {
		return s
	}
	return &throttledStore{Store: s, limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

func (t *throttledStore) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return primitive.NilObjectID, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.Store.CreateAccount(ctx, account)
}

func (t *throttledStore) CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return primitive.NilObjectID, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.Store.CreateListing(ctx, listing)
}
