package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"greendrake/estate-seeder/internal/auth"
	"greendrake/estate-seeder/internal/db"
	"greendrake/estate-seeder/internal/generator"
	"greendrake/estate-seeder/internal/models"
	"greendrake/estate-seeder/internal/store"
)

// IdentitySource hands out collision-free identities. *generator.IdentityAllocator implements it.
type IdentitySource interface {
	Next() (models.Identity, error)
}

// AccountOutcome is the tagged result of provisioning one account.
type AccountOutcome struct {
	Kind     OutcomeKind
	Account  *models.Account
	Attempts int
	Err      error
}

// IAccountProvisioner persists one account per call.
type IAccountProvisioner interface {
	Provision(ctx context.Context, index int, identities IdentitySource) AccountOutcome
}

// AccountProvisionerConfig controls account creation.
type AccountProvisionerConfig struct {
	Password    string
	MaxAttempts int
	RetryDelay  time.Duration
	Now         func() time.Time
}

// accountProvisioner implements IAccountProvisioner.
type accountProvisioner struct {
	store store.Store
	hash  auth.Hasher
	media generator.Media
	cfg   AccountProvisionerConfig
}

// NewAccountProvisioner creates a new AccountProvisioner.
func NewAccountProvisioner(st store.Store, hash auth.Hasher, media generator.Media, cfg AccountProvisionerConfig) IAccountProvisioner {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &accountProvisioner{store: st, hash: hash, media: media, cfg: cfg}
}

// Provision creates one account. Every attempt draws a fresh identity; a
// persistence failure is retried until MaxAttempts is reached, after which the
// outcome is OutcomeRetryable carrying the last TransientProvisioningError.
// Identity or hashing failures end the sequence with OutcomeFatal.
func (p *accountProvisioner) Provision(ctx context.Context, index int, identities IdentitySource) AccountOutcome {
	var created *models.Account
	attempts := 0

	policy := db.RetryPolicy{
		MaxAttempts: p.cfg.MaxAttempts,
		BaseDelay:   p.cfg.RetryDelay,
		ShouldRetry: isTransient,
		OnRetry: func(attempt int, err error) {
			reason := "store error"
			if store.IsDuplicateKey(err) {
				reason = "identity already stored"
			}
			log.Printf("Account %d: attempt %d/%d failed (%s): %v. Retrying with a new identity.",
				index, attempt, p.cfg.MaxAttempts, reason, err)
		},
	}

	err := policy.Do(ctx, func(attempt int) error {
		attempts = attempt
		identity, err := identities.Next()
		if err != nil {
			return fmt.Errorf("failed to allocate identity: %w", err)
		}
		passwordHash, err := p.hash(p.cfg.Password)
		if err != nil {
			return err
		}

		account := &models.Account{
			Username:     identity.Username,
			Email:        identity.Email,
			PasswordHash: passwordHash,
			AvatarURL:    p.media.AvatarURL(),
		}
		account.Touch(p.cfg.Now().UTC())

		id, err := p.store.CreateAccount(ctx, account)
		if err != nil {
			return &TransientProvisioningError{Kind: RecordAccount, Index: index, Attempt: attempt, Err: err}
		}
		account.SetID(id)
		created = account
		return nil
	})

	switch {
	case err == nil:
		return AccountOutcome{Kind: OutcomeCreated, Account: created, Attempts: attempts}
	case isTransient(err):
		return AccountOutcome{Kind: OutcomeRetryable, Attempts: attempts,
			Err: fmt.Errorf("account %d not created after %d attempts: %w", index, attempts, err)}
	default:
		return AccountOutcome{Kind: OutcomeFatal, Attempts: attempts, Err: err}
	}
}

func isTransient(err error) bool {
	var te *TransientProvisioningError
	return errors.As(err, &te)
}
