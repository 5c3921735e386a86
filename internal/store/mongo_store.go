package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"greendrake/estate-seeder/internal/db"
	"greendrake/estate-seeder/internal/models"
)

// MongoStore writes to the users and listings collections of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to MongoDB and returns a ready store.
func OpenMongo(uri, dbName string) (*MongoStore, error) {
	client, database, err := db.ConnectDB(uri, dbName)
	if err != nil {
		return nil, err
	}
	return &MongoStore{client: client, db: database}, nil
}

// NewMongoStore wraps an existing database handle. Close leaves the client open.
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{db: database}
}

// DeleteAllAccounts removes every user and makes sure the unique indexes exist.
func (s *MongoStore) DeleteAllAccounts(ctx context.Context) (int64, error) {
	res, err := s.db.Collection(db.UsersCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	if err := db.EnsureAccountIndexes(ctx, s.db); err != nil {
		return res.DeletedCount, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) DeleteAllListings(ctx context.Context) (int64, error) {
	res, err := s.db.Collection(db.ListingsCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete listings: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	return s.insert(ctx, db.UsersCollection, &account.Base, account)
}

func (s *MongoStore) CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	return s.insert(ctx, db.ListingsCollection, &listing.Base, listing)
}

func (s *MongoStore) insert(ctx context.Context, collection string, base *models.Base, doc interface{}) (primitive.ObjectID, error) {
	base.GenIDIfEmpty()
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		base.SetID(primitive.NilObjectID)
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected %s id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// Close disconnects the client when the store opened it.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return db.DisconnectDB(s.client)
}
