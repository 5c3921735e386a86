package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greendrake/estate-seeder/internal/models"
)

func TestWithRateLimit_ZeroRateIsPassthrough(t *testing.T) {
	s := openTestBolt(t)
	assert.Same(t, Store(s), WithRateLimit(s, 0))
}

func TestWithRateLimit_SpacesCreates(t *testing.T) {
	s := WithRateLimit(openTestBolt(t), 20)
	ctx := context.Background()

	start := time.Now()
	for i, name := range []string{"a", "b", "c"} {
		_, err := s.CreateAccount(ctx, &models.Account{Username: name, Email: name + "@example.com"})
		require.NoError(t, err, "create %d", i)
	}
	// burst of one: the 2nd and 3rd creates wait ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestWithRateLimit_CancelledContext(t *testing.T) {
	s := WithRateLimit(openTestBolt(t), 0.001)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := s.CreateListing(ctx, &models.Listing{Name: "first"})
	require.NoError(t, err)

	cancel()
	_, err = s.CreateListing(ctx, &models.Listing{Name: "second"})
	assert.ErrorIs(t, err, context.Canceled)
}
