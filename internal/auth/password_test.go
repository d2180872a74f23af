package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the suite fast.
var testArgon = ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword(testArgon, "Password123!")
	require.NoError(t, err)

	ok, err := CheckPassword("Password123!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	a, err := HashPassword(testArgon, "same")
	require.NoError(t, err)
	b, err := HashPassword(testArgon, "same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_RejectsMalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"invalid-hash-format",
		"argon2id$m=1,t=1,p=1$onlytwo",
		"argon2id$garbage$AAAA$AAAA",
		"argon2id$m=1,t=1,p=1$!!!$AAAA",
	} {
		ok, err := CheckPassword("Password123!", encoded)
		assert.ErrorIs(t, err, ErrInvalidHash, encoded)
		assert.False(t, ok)
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Owner")
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, r)

	_, err = ParseRole("Any")
	assert.Error(t, err, "wildcard is not an account role")

	_, err = ParseRole("owner")
	assert.Error(t, err)
}
