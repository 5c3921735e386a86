package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"greendrake/estate-seeder/internal/models"
)

// ErrIdentitySpaceExhausted is returned when no unused candidate was found
// within the allocator's attempt ceiling.
var ErrIdentitySpaceExhausted = errors.New("identity space exhausted")

// UsedSet records values already handed out during one batch.
type UsedSet map[string]struct{}

func NewUsedSet() UsedSet { return make(UsedSet) }

func (s UsedSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s UsedSet) Add(v string) { s[v] = struct{}{} }

// IdentityConfig tunes an IdentityAllocator.
type IdentityConfig struct {
	EmailDomain string
	MaxAttempts int
	Now         func() time.Time
}

// IdentityAllocator produces collision-free (username, email) pairs. It is not
// safe for concurrent use; the used sets are owned by the caller.
type IdentityAllocator struct {
	rng       Source
	usernames UsedSet
	emails    UsedSet
	cfg       IdentityConfig
}

// NewIdentityAllocator creates an allocator registering accepted values in
// usernames and emails.
func NewIdentityAllocator(rng Source, usernames, emails UsedSet, cfg IdentityConfig) *IdentityAllocator {
	if cfg.EmailDomain == "" {
		cfg.EmailDomain = "example.com"
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1000
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &IdentityAllocator{rng: rng, usernames: usernames, emails: emails, cfg: cfg}
}

// Next draws a person name from the catalog and allocates an identity for it.
func (a *IdentityAllocator) Next() (models.Identity, error) {
	return a.Allocate(pick(a.rng, firstNames), pick(a.rng, lastNames))
}

// Allocate returns an identity for the given name. Each value is checked
// against its used set and registered there before returning.
func (a *IdentityAllocator) Allocate(first, last string) (models.Identity, error) {
	first, last = normalizeName(first), normalizeName(last)

	username, err := a.claim(a.usernames, func() string {
		return first + last + a.timeSuffix() + a.randomSuffix()
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("username for %s %s: %w", first, last, err)
	}
	email, err := a.claim(a.emails, func() string {
		return first + "." + last + a.timeSuffix() + a.randomSuffix() + "@" + a.cfg.EmailDomain
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("email for %s %s: %w", first, last, err)
	}
	return models.Identity{Username: username, Email: email}, nil
}

func (a *IdentityAllocator) claim(used UsedSet, candidate func() string) (string, error) {
	for i := 0; i < a.cfg.MaxAttempts; i++ {
		v := candidate()
		if !used.Has(v) {
			used.Add(v)
			return v, nil
		}
	}
	return "", ErrIdentitySpaceExhausted
}

// timeSuffix is the last four digits of the current Unix time in milliseconds.
func (a *IdentityAllocator) timeSuffix() string {
	return fmt.Sprintf("%04d", a.cfg.Now().UnixMilli()%10000)
}

func (a *IdentityAllocator) randomSuffix() string {
	return fmt.Sprintf("%03d", a.rng.IntN(1000))
}

// normalizeName lower-cases a name and drops everything but letters and digits.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
