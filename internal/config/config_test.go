package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir keeps Load from picking up a .env next to the package.
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load(NoOverrides)
	require.NoError(t, err)

	assert.Equal(t, BackendMongo, cfg.StoreBackend)
	assert.Equal(t, 50, cfg.AccountCount)
	assert.Equal(t, 200, cfg.ListingCount)
	assert.Equal(t, 3, cfg.AccountMaxAttempts)
	assert.Equal(t, 1000, cfg.IdentityMaxAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, uint64(0), cfg.RandomSeed)
	assert.Equal(t, "example.com", cfg.EmailDomain)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("BOLT_PATH", "/tmp/seed.db")
	t.Setenv("SEED_ACCOUNT_COUNT", "7")
	t.Setenv("SEED_LISTING_COUNT", "9")
	t.Setenv("SEED_RANDOM_SEED", "123")
	t.Setenv("SEED_MAX_WRITES_PER_SECOND", "25.5")

	cfg, err := Load(Overrides{Accounts: 2, Listings: -1, Seed: 77, Backend: BackendBolt})
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, cfg.StoreBackend)
	assert.Equal(t, 2, cfg.AccountCount)
	assert.Equal(t, 9, cfg.ListingCount)
	assert.Equal(t, uint64(77), cfg.RandomSeed)
	assert.Equal(t, 25.5, cfg.MaxWritesPerSecond)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing mongo uri", map[string]string{"STORE_BACKEND": "mongo"}, "MONGO_URI"},
		{"unknown backend", map[string]string{"STORE_BACKEND": "sqlite"}, "STORE_BACKEND"},
		{"negative accounts", map[string]string{"STORE_BACKEND": "bolt", "SEED_ACCOUNT_COUNT": "-3"}, "SEED_ACCOUNT_COUNT"},
		{"zero attempts", map[string]string{"STORE_BACKEND": "bolt", "SEED_ACCOUNT_MAX_ATTEMPTS": "0"}, "SEED_ACCOUNT_MAX_ATTEMPTS"},
		{"bad duration", map[string]string{"STORE_BACKEND": "bolt", "SEED_RETRY_DELAY": "soon"}, "RetryDelay"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inTempDir(t)
			t.Setenv("MONGO_URI", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(NoOverrides)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
