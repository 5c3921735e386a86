package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"greendrake/estate-seeder/internal/db"
	"greendrake/estate-seeder/internal/models"
)

var (
	usersBucket     = []byte(db.UsersCollection)
	listingsBucket  = []byte(db.ListingsCollection)
	usernameIndex   = []byte("users_username")
	emailIndex      = []byte("users_email")
	accountBuckets  = [][]byte{usersBucket, usernameIndex, emailIndex}
	listingBuckets  = [][]byte{listingsBucket}
	allBoltBuckets  = append(append([][]byte{}, accountBuckets...), listingBuckets...)
	boltOpenTimeout = 5 * time.Second
	boltFileMode    = os.FileMode(0600)
	boltDirFileMode = os.FileMode(0755)
)

// BoltStore is an embedded single-file store for offline development. Documents
// are BSON-encoded and keyed by their hex ObjectID; username and email are kept
// unique through index buckets.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database file at path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), boltDirFileMode); err != nil {
		return nil, fmt.Errorf("failed to create bbolt directory: %w", err)
	}
	bdb, err := bolt.Open(path, boltFileMode, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}
	err = bdb.Update(func(tx *bolt.Tx) error {
		for _, name := range allBoltBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("failed to create bbolt buckets: %w", err)
	}
	return &BoltStore{db: bdb}, nil
}

func (s *BoltStore) DeleteAllAccounts(ctx context.Context) (int64, error) {
	return s.reset(usersBucket, accountBuckets)
}

func (s *BoltStore) DeleteAllListings(ctx context.Context) (int64, error) {
	return s.reset(listingsBucket, listingBuckets)
}

// reset recreates buckets and returns how many documents primary held.
func (s *BoltStore) reset(primary []byte, buckets [][]byte) (int64, error) {
	var deleted int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		if b := tx.Bucket(primary); b != nil {
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				deleted++
			}
		}
		for _, name := range buckets {
			if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reset %s: %w", primary, err)
	}
	return deleted, nil
}

func (s *BoltStore) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	account.GenIDIfEmpty()
	err := s.db.Update(func(tx *bolt.Tx) error {
		byUsername, byEmail := tx.Bucket(usernameIndex), tx.Bucket(emailIndex)
		if byUsername.Get([]byte(account.Username)) != nil {
			return fmt.Errorf("username %q: %w", account.Username, ErrDuplicateKey)
		}
		if byEmail.Get([]byte(account.Email)) != nil {
			return fmt.Errorf("email %q: %w", account.Email, ErrDuplicateKey)
		}
		key := []byte(account.ID.Hex())
		if err := putDocument(tx.Bucket(usersBucket), key, account); err != nil {
			return err
		}
		if err := byUsername.Put([]byte(account.Username), key); err != nil {
			return err
		}
		return byEmail.Put([]byte(account.Email), key)
	})
	if err != nil {
		account.SetID(primitive.NilObjectID)
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", usersBucket, err)
	}
	return account.ID, nil
}

func (s *BoltStore) CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	listing.GenIDIfEmpty()
	err := s.db.Update(func(tx *bolt.Tx) error {
		return putDocument(tx.Bucket(listingsBucket), []byte(listing.ID.Hex()), listing)
	})
	if err != nil {
		listing.SetID(primitive.NilObjectID)
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", listingsBucket, err)
	}
	return listing.ID, nil
}

func putDocument(b *bolt.Bucket, key []byte, doc interface{}) error {
	if b.Get(key) != nil {
		return fmt.Errorf("_id %s: %w", key, ErrDuplicateKey)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return b.Put(key, raw)
}

// Accounts returns every stored account.
func (s *BoltStore) Accounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	err := s.forEach(usersBucket, func(raw []byte) error {
		var a models.Account
		if err := bson.Unmarshal(raw, &a); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}

// Listings returns every stored listing.
func (s *BoltStore) Listings(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	err := s.forEach(listingsBucket, func(raw []byte) error {
		var l models.Listing
		if err := bson.Unmarshal(raw, &l); err != nil {
			return err
		}
		out = append(out, l)
		return nil
	})
	return out, err
}

func (s *BoltStore) forEach(bucket []byte, fn func(raw []byte) error) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			return fn(v)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", bucket, err)
	}
	return nil
}

func (s *BoltStore) Close(ctx context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close bbolt database: %w", err)
	}
	return nil
}
