// Package store persists seeded accounts and listings.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"greendrake/estate-seeder/internal/db"
	"greendrake/estate-seeder/internal/models"
)

// ErrDuplicateKey is returned by backends without native unique indexes when
// an account's username or email is already stored.
var ErrDuplicateKey = errors.New("duplicate key")

// Store is the document store the seeder writes to.
type Store interface {
	DeleteAllAccounts(ctx context.Context) (int64, error)
	DeleteAllListings(ctx context.Context) (int64, error)
	// CreateAccount inserts the account and returns its assigned identifier.
	CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error)
	// CreateListing inserts the listing and returns its assigned identifier.
	CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error)
	Close(ctx context.Context) error
}

// IsDuplicateKey reports whether err is a uniqueness violation from any backend.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || db.IsMongoDuplicateKeyError(err)
}
