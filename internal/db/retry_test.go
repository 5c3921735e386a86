package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockMongoDuplicateKeyError creates an error that IsMongoDuplicateKeyError will recognize.
func mockMongoDuplicateKeyError(key string) error {
	mongoErr := mongo.WriteError{
		Code:    11000,
		Message: fmt.Sprintf("E11000 duplicate key error collection: test.users index: username_1 dup key: { username: \"%s\" }", key),
	}
	return mongo.WriteException{WriteErrors: []mongo.WriteError{mongoErr}}
}

func TestRetryPolicy_SuccessfulFirstAttempt(t *testing.T) {
	var opCalled int
	err := RetryPolicy{MaxAttempts: 3}.Do(context.Background(), func(attempt int) error {
		opCalled++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, opCalled)
}

func TestRetryPolicy_NonRetryableStopsImmediately(t *testing.T) {
	var opCalled int
	expectedErr := errors.New("some other error")
	policy := RetryPolicy{MaxAttempts: 3, ShouldRetry: IsMongoDuplicateKeyError}

	err := policy.Do(context.Background(), func(attempt int) error {
		opCalled++
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 1, opCalled)
}

func TestRetryPolicy_ExhaustAttempts(t *testing.T) {
	var attempts []int
	var retried []int
	policy := RetryPolicy{
		MaxAttempts: 3,
		ShouldRetry: IsMongoDuplicateKeyError,
		OnRetry:     func(attempt int, err error) { retried = append(retried, attempt) },
	}

	err := policy.Do(context.Background(), func(attempt int) error {
		attempts = append(attempts, attempt)
		return mockMongoDuplicateKeyError(fmt.Sprintf("user%d", attempt))
	})

	require.Error(t, err)
	assert.True(t, IsMongoDuplicateKeyError(err))
	assert.Equal(t, []int{1, 2, 3}, attempts)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestRetryPolicy_CollisionResolves(t *testing.T) {
	taken := map[string]bool{"alice": true, "bob": true}
	candidates := []string{"alice", "bob", "carol"}
	var inserted string

	err := RetryPolicy{MaxAttempts: 3}.Do(context.Background(), func(attempt int) error {
		candidate := candidates[attempt-1]
		if taken[candidate] {
			return mockMongoDuplicateKeyError(candidate)
		}
		taken[candidate] = true
		inserted = candidate
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "carol", inserted)
}

func TestRetryPolicy_ZeroAttemptsRunsOnce(t *testing.T) {
	var opCalled int
	_ = RetryPolicy{}.Do(context.Background(), func(int) error {
		opCalled++
		return errors.New("boom")
	})
	assert.Equal(t, 1, opCalled)
}

func TestRetryPolicy_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var opCalled int

	err := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}.Do(ctx, func(int) error {
		opCalled++
		return errors.New("store unavailable")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, opCalled)
}
