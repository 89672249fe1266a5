package claims_test

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alechenninger/identity/pkg/claims"
	"github.com/alechenninger/identity/pkg/identity"
)

func TestOf(t *testing.T) {
	t.Run("Get from populated identity", func(t *testing.T) {
		tenant := claims.Of("tenant", claims.Int64)
		id := identity.NewClaimsIdentity("test", identity.NewClaim("tenant", "42"))

		value, ok, err := tenant.Get(id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(42), value)
	})

	t.Run("Get missing claim", func(t *testing.T) {
		tenant := claims.Of("tenant", claims.Int64)
		id := identity.NewClaimsIdentity("test", identity.NewClaim("other", "value"))

		value, ok, err := tenant.Get(id)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("Get from identity without claims", func(t *testing.T) {
		value, ok, err := claims.Email.Get(identity.NewBasicIdentity("alice", "basic"))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("Get from nil identity", func(t *testing.T) {
		_, ok, err := claims.Email.Get(nil)
		require.ErrorIs(t, err, identity.ErrInvalidArgument)
		assert.False(t, ok)
	})

	t.Run("Get value that does not parse", func(t *testing.T) {
		flag := claims.Of("flag", claims.Bool)
		id := identity.NewClaimsIdentity("test", identity.NewClaim("flag", "maybe"))

		_, ok, err := flag.Get(id)
		assert.True(t, ok)
		var numErr *strconv.NumError
		require.ErrorAs(t, err, &numErr)
	})

	t.Run("Panics without parser", func(t *testing.T) {
		assert.Panics(t, func() {
			claims.Of[string]("x", nil)
		})
	})
}

func TestParsers(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v, err := claims.Int("-7")
		require.NoError(t, err)
		assert.Equal(t, -7, v)

		_, err = claims.Int("seven")
		assert.Error(t, err)
	})

	t.Run("Uint64", func(t *testing.T) {
		v, err := claims.Uint64("18446744073709551615")
		require.NoError(t, err)
		assert.Equal(t, uint64(18446744073709551615), v)

		_, err = claims.Uint64("-1")
		assert.Error(t, err)
	})

	t.Run("Bool", func(t *testing.T) {
		v, err := claims.Bool("true")
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("UUID", func(t *testing.T) {
		want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		id := identity.NewClaimsIdentity("test",
			identity.NewClaim(identity.ClaimTypeNameIdentifier, want.String()),
		)

		got, err := claims.UserIDAs(id, claims.UUID)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = claims.UUID("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("UUID zero value when absent", func(t *testing.T) {
		got, err := claims.UserIDAs(identity.NewClaimsIdentity("test"), claims.UUID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, got)
	})
}

func TestUserClaim(t *testing.T) {
	id := identity.NewClaimsIdentity("test", identity.NewClaim("tenant", "acme"))

	v, ok, err := claims.UserClaim(id, "tenant")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme", v)

	_, ok, err = claims.UserClaim(identity.NewBasicIdentity("alice", "basic"), "tenant")
	require.NoError(t, err)
	assert.False(t, ok)
}
