package guard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

const secret = "guard-test-secret"

// fakeDirectory serves users from a map and counts lookups.
type fakeDirectory struct {
	users   map[int64]*users.User
	err     error
	lookups atomic.Int64
}

func (d *fakeDirectory) FindByID(_ context.Context, id int64) (*users.User, error) {
	d.lookups.Add(1)
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// countingVerifier wraps a Verifier and counts calls.
type countingVerifier struct {
	next  Verifier
	calls atomic.Int64
}

func (v *countingVerifier) Verify(token string) (auth.Claims, error) {
	v.calls.Add(1)
	return v.next.Verify(token)
}

type fixture struct {
	guard     *Guard
	tokens    *auth.TokenService
	verifier  *countingVerifier
	directory *fakeDirectory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens := auth.NewTokenService(secret, 0)
	verifier := &countingVerifier{next: tokens}
	directory := &fakeDirectory{users: map[int64]*users.User{
		1: {ID: 1, Email: "owner@example.com", Role: auth.RoleOwner},
		2: {ID: 2, Email: "client@example.com", Role: auth.RoleClient},
		3: {ID: 3, Email: "rider@example.com", Role: auth.RoleDelivery},
	}}

	registry := Registry{}
	registry.Register("Mutation.createRestaurant", auth.RoleOwner)
	registry.Register("Query.me", auth.RoleAny)
	registry.Register("Query.orders", auth.RoleClient, auth.RoleDelivery)

	return &fixture{
		guard:     New(registry, verifier, directory),
		tokens:    tokens,
		verifier:  verifier,
		directory: directory,
	}
}

func (f *fixture) token(t *testing.T, id int64) string {
	t.Helper()
	tok, err := f.tokens.Sign(id)
	require.NoError(t, err)
	return tok
}

func TestAuthorize_PublicOperationIgnoresToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, tok := range []string{"", "garbage", f.token(t, 1), f.token(t, 999)} {
		d := f.guard.Authorize(ctx, "Query.restaurants", tok)
		assert.True(t, d.Allowed)
		assert.Equal(t, Public, d.Outcome)
		assert.Nil(t, d.User)
	}
	assert.Zero(t, f.verifier.calls.Load())
	assert.Zero(t, f.directory.lookups.Load())
}

func TestAuthorize_MissingToken(t *testing.T) {
	f := newFixture(t)
	d := f.guard.Authorize(context.Background(), "Mutation.createRestaurant", "")

	assert.False(t, d.Allowed)
	assert.Equal(t, MissingCredential, d.Outcome)
	assert.Nil(t, d.User)
	assert.Zero(t, f.verifier.calls.Load())
}

func TestAuthorize_InvalidToken(t *testing.T) {
	f := newFixture(t)

	forged, err := auth.NewTokenService("another-secret", 0).Sign(1)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		ID:               ptr(int64(1)),
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":    "not-a-token",
		"wrong secret": forged,
		"expired":      expired,
		"no subject":   noSubject,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			d := f.guard.Authorize(context.Background(), "Query.me", tok)
			assert.False(t, d.Allowed)
			assert.Equal(t, InvalidCredential, d.Outcome)
			assert.Nil(t, d.User)
			assert.Error(t, d.Err)
		})
	}
	assert.Zero(t, f.directory.lookups.Load())
}

func TestAuthorize_UnknownSubject(t *testing.T) {
	f := newFixture(t)
	d := f.guard.Authorize(context.Background(), "Query.me", f.token(t, 999))

	assert.False(t, d.Allowed)
	assert.Equal(t, UnknownSubject, d.Outcome)
	assert.Nil(t, d.User)
	assert.NoError(t, d.Err)
}

func TestAuthorize_DirectoryFailureDenies(t *testing.T) {
	f := newFixture(t)
	f.directory.err = errors.New("connection refused")

	d := f.guard.Authorize(context.Background(), "Query.me", f.token(t, 1))
	assert.False(t, d.Allowed)
	assert.Equal(t, UnknownSubject, d.Outcome)
	assert.EqualError(t, d.Err, "connection refused")
}

func TestAuthorize_RoleMatch(t *testing.T) {
	f := newFixture(t)
	d := f.guard.Authorize(context.Background(), "Mutation.createRestaurant", f.token(t, 1))

	assert.True(t, d.Allowed)
	assert.Equal(t, Granted, d.Outcome)
	require.NotNil(t, d.User)
	assert.Equal(t, int64(1), d.User.ID)
	assert.Equal(t, auth.RoleOwner, d.User.Role)
}

func TestAuthorize_AnyAcceptsEveryRole(t *testing.T) {
	f := newFixture(t)
	for _, id := range []int64{1, 2, 3} {
		d := f.guard.Authorize(context.Background(), "Query.me", f.token(t, id))
		assert.True(t, d.Allowed, "user %d", id)
		assert.Equal(t, Granted, d.Outcome)
		require.NotNil(t, d.User)
		assert.Equal(t, id, d.User.ID)
	}
}

func TestAuthorize_MultipleRoles(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.guard.Authorize(context.Background(), "Query.orders", f.token(t, 2)).Allowed)
	assert.True(t, f.guard.Authorize(context.Background(), "Query.orders", f.token(t, 3)).Allowed)
	assert.False(t, f.guard.Authorize(context.Background(), "Query.orders", f.token(t, 1)).Allowed)
}

func TestAuthorize_InsufficientRoleKeepsUser(t *testing.T) {
	f := newFixture(t)
	d := f.guard.Authorize(context.Background(), "Mutation.createRestaurant", f.token(t, 2))

	assert.False(t, d.Allowed)
	assert.Equal(t, InsufficientRole, d.Outcome)
	require.NotNil(t, d.User)
	assert.Equal(t, int64(2), d.User.ID)
}

func TestAuthorize_Idempotent(t *testing.T) {
	f := newFixture(t)
	cases := []struct{ op, token string }{
		{"Query.restaurants", ""},
		{"Query.me", ""},
		{"Query.me", "junk"},
		{"Query.me", f.token(t, 999)},
		{"Mutation.createRestaurant", f.token(t, 1)},
		{"Mutation.createRestaurant", f.token(t, 2)},
	}
	for _, c := range cases {
		first := f.guard.Authorize(context.Background(), c.op, c.token)
		second := f.guard.Authorize(context.Background(), c.op, c.token)
		assert.Equal(t, first.Allowed, second.Allowed)
		assert.Equal(t, first.Outcome, second.Outcome)
		assert.Equal(t, first.User, second.User)
	}
}

func TestAuthorize_Concurrent(t *testing.T) {
	f := newFixture(t)
	owner, client := f.token(t, 1), f.token(t, 2)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.True(t, f.guard.Authorize(context.Background(), "Mutation.createRestaurant", owner).Allowed)
		}()
		go func() {
			defer wg.Done()
			assert.False(t, f.guard.Authorize(context.Background(), "Mutation.createRestaurant", client).Allowed)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(100), f.directory.lookups.Load())
}

func TestRegistry(t *testing.T) {
	r := Registry{}
	r.Register("Query.me", auth.RoleAny)
	r.Register("Query.restaurants")

	roles, ok := r.Roles("Query.me")
	assert.True(t, ok)
	assert.Equal(t, []auth.Role{auth.RoleAny}, roles)

	_, ok = r.Roles("Query.restaurants")
	assert.False(t, ok)

	assert.Equal(t,
		[]string{"Mutation.login", "Query.restaurants"},
		r.PublicOf([]string{"Query.restaurants", "Query.me", "Mutation.login"}),
	)
}

func ptr[T any](v T) *T { return &v }
