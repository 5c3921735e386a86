package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"greendrake/estate-seeder/internal/auth"
	"greendrake/estate-seeder/internal/generator"
	"greendrake/estate-seeder/internal/models"
	"greendrake/estate-seeder/internal/store"
)

// MockStore is a testify mock of store.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) DeleteAllAccounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteAllListings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStore) CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	args := m.Called(ctx, listing)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStore) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ store.Store = (*MockStore)(nil)

// MockReporter is a testify mock of Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Publish(ctx context.Context, summary *Summary) error {
	return m.Called(ctx, summary).Error(0)
}

// constSource always draws the lowest value.
type constSource struct{}

func (constSource) IntN(int) int     { return 0 }
func (constSource) Float64() float64 { return 0 }

// fakeIdentities hands out a fixed sequence of identities.
type fakeIdentities struct {
	ids   []models.Identity
	err   error
	calls int
}

func (f *fakeIdentities) Next() (models.Identity, error) {
	f.calls++
	if f.err != nil {
		return models.Identity{}, f.err
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id, nil
}

var testMedia = generator.Media{AvatarBaseURL: "https://avatars.test/150", ImageBaseURL: "https://images.test/1280/720"}

const testPassword = "password123"

func fixedNow() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 42_000_000, time.UTC) }

func openTestBolt(t *testing.T) *store.BoltStore {
	t.Helper()
	s, err := store.OpenBolt(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// newTestSeedService wires real provisioners to st, the way main does.
func newTestSeedService(st store.Store, rng generator.Source, accounts, listings int) ISeedService {
	accountProvisioner := NewAccountProvisioner(st, auth.NewBcryptHasher(bcrypt.MinCost), testMedia, AccountProvisionerConfig{
		Password:    testPassword,
		MaxAttempts: 3,
	})
	listingProvisioner := NewListingProvisioner(st, rng, testMedia, nil)
	return NewSeedService(st, rng, accountProvisioner, listingProvisioner, SeedConfig{
		AccountCount: accounts,
		ListingCount: listings,
		Seed:         1,
	}, io.Discard)
}
