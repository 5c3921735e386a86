package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.UnixMilli(1_700_000_000_042)
}

func TestIdentityAllocator_Format(t *testing.T) {
	rng := &scriptedSource{ints: []int{7, 9}}
	a := NewIdentityAllocator(rng, NewUsedSet(), NewUsedSet(), IdentityConfig{Now: fixedClock})

	id, err := a.Allocate("Jane", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "janedoe0042007", id.Username)
	assert.Equal(t, "jane.doe0042009@example.com", id.Email)
}

func TestIdentityAllocator_RegeneratesOnCollision(t *testing.T) {
	usernames, emails := NewUsedSet(), NewUsedSet()
	usernames.Add("janedoe0042007")
	emails.Add("jane.doe0042008@seed.test")
	rng := &scriptedSource{ints: []int{7, 8, 8, 9}}
	a := NewIdentityAllocator(rng, usernames, emails, IdentityConfig{Now: fixedClock, EmailDomain: "seed.test"})

	id, err := a.Allocate("Jane", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "janedoe0042008", id.Username)
	assert.Equal(t, "jane.doe0042009@seed.test", id.Email)
	assert.True(t, usernames.Has(id.Username))
	assert.True(t, emails.Has(id.Email))
	assert.Len(t, usernames, 2)
	assert.Len(t, emails, 2)
}

func TestIdentityAllocator_Exhausted(t *testing.T) {
	usernames := NewUsedSet()
	usernames.Add("janedoe0042000")
	a := NewIdentityAllocator(&scriptedSource{}, usernames, NewUsedSet(), IdentityConfig{Now: fixedClock, MaxAttempts: 3})

	_, err := a.Allocate("Jane", "Doe")

	assert.ErrorIs(t, err, ErrIdentitySpaceExhausted)
}

func TestIdentityAllocator_NormalizesNames(t *testing.T) {
	a := NewIdentityAllocator(&scriptedSource{}, NewUsedSet(), NewUsedSet(), IdentityConfig{Now: fixedClock})

	id, err := a.Allocate("Seán", "O'Brien")
	require.NoError(t, err)

	assert.Equal(t, "senobrien0042000", id.Username)
	assert.Equal(t, "sen.obrien0042000@example.com", id.Email)
}

func TestIdentityAllocator_BatchIsUnique(t *testing.T) {
	rng, _ := NewSource(99)
	usernames, emails := NewUsedSet(), NewUsedSet()
	a := NewIdentityAllocator(rng, usernames, emails, IdentityConfig{Now: fixedClock})

	seenUsernames := map[string]bool{}
	seenEmails := map[string]bool{}
	for i := 0; i < 500; i++ {
		id, err := a.Next()
		require.NoError(t, err)
		u, e := strings.ToLower(id.Username), strings.ToLower(id.Email)
		require.False(t, seenUsernames[u], "duplicate username %s", u)
		require.False(t, seenEmails[e], "duplicate email %s", e)
		seenUsernames[u], seenEmails[e] = true, true
		assert.Equal(t, id.Username, u)
	}
	assert.Len(t, usernames, 500)
	assert.Len(t, emails, 500)
}
