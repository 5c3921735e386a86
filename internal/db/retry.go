package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Attempt performs one try of an operation. attempt is 1-based.
type Attempt func(attempt int) error

// ShouldRetry reports whether a failed attempt may be repeated.
type ShouldRetry func(err error) bool

// AlwaysRetry treats every failure as retryable.
func AlwaysRetry(error) bool { return true }

// RetryPolicy bounds how often an operation is attempted.
type RetryPolicy struct {
	MaxAttempts int
	// BaseDelay grows linearly with the attempt number. Zero disables waiting.
	BaseDelay   time.Duration
	ShouldRetry ShouldRetry
	// OnRetry, when set, is called after a failed attempt that will be repeated.
	OnRetry func(attempt int, err error)
}

// Do runs op until it succeeds, the policy is exhausted, a non-retryable error
// is returned or ctx is done. The last error is returned unchanged.
func (p RetryPolicy) Do(ctx context.Context, op Attempt) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	shouldRetry := p.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = AlwaysRetry
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op(attempt)
		if err == nil {
			return nil
		}
		if attempt == maxAttempts || !shouldRetry(err) {
			break
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		if p.BaseDelay > 0 {
			// Simple incremental backoff
			select {
			case <-ctx.Done():
				return errors.Join(err, ctx.Err())
			case <-time.After(time.Duration(attempt) * p.BaseDelay):
			}
		}
	}
	return err
}

// IsMongoDuplicateKeyError checks if an error from MongoDB is a duplicate key error (code 11000).
func IsMongoDuplicateKeyError(err error) bool {
	var e mongo.WriteException
	if errors.As(err, &e) {
		for _, we := range e.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, writeError := range bwe.WriteErrors {
			if writeError.Code == 11000 {
				return true
			}
		}
	}
	return false
}
