package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validToken(t *testing.T) string {
	t.Helper()
	return makeToken(t, []byte(`{"user_id":"u-1","full_name":"Ada","email":"ada@example.com","role_name":"ROLE_OWNER"}`))
}

func TestGuardStatus_Anonymous(t *testing.T) {
	guard := NewGuard(NewMemoryStore(), nil)

	status := guard.Status(context.Background())
	assert.Equal(t, StatusAnonymous, status.Kind)
	assert.Nil(t, status.Claims)
}

func TestGuardStatus_Authenticated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, validToken(t), time.Hour))

	status := NewGuard(store, nil).Status(ctx)
	require.Equal(t, StatusAuthenticated, status.Kind)
	require.NotNil(t, status.Claims)
	assert.Equal(t, "u-1", status.Claims.UserID)
	assert.Equal(t, "ROLE_OWNER", status.Claims.RoleName)
}

func TestGuardStatus_ExpiredClearsStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, validToken(t), -time.Minute))

	status := NewGuard(store, nil).Status(ctx)
	assert.Equal(t, StatusExpired, status.Kind)

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred, "expired credential must not be left in the store")
}

func TestGuardStatus_UndecodableClearsStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "not-a-real-token", time.Hour))

	status := NewGuard(store, nil).Status(ctx)
	assert.Equal(t, StatusAnonymous, status.Kind)

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestGuardStatus_RecomputedEachCall(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, validToken(t), time.Hour))
	guard := NewGuard(store, nil)

	assert.Equal(t, StatusAuthenticated, guard.Status(ctx).Kind)

	// Mutating the store between calls must be observed.
	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, StatusAnonymous, guard.Status(ctx).Kind)
}

func TestIsExpiringSoon(t *testing.T) {
	ctx := context.Background()
	window := 5 * time.Minute

	t.Run("no credential fails closed", func(t *testing.T) {
		guard := NewGuard(NewMemoryStore(), nil)
		assert.True(t, guard.IsExpiringSoon(ctx, window))
	})

	t.Run("expiring in four minutes", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, validToken(t), 4*time.Minute))
		assert.True(t, NewGuard(store, nil).IsExpiringSoon(ctx, window))
	})

	t.Run("expiring in ten minutes", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, validToken(t), 10*time.Minute))
		assert.False(t, NewGuard(store, nil).IsExpiringSoon(ctx, window))
	})
}

func TestMemoryStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Clear(ctx))

	require.NoError(t, store.Save(ctx, "tok", time.Hour))
	require.NoError(t, store.SaveProfile(ctx, []byte(`{"user_id":"u-1"}`)))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)

	profile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile, "profile must be cleared together with the token")
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "first", time.Hour))
	require.NoError(t, store.Save(ctx, "second", time.Hour))

	cred, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "second", cred.Token)
	assert.True(t, cred.ExpiresAt.After(time.Now()))
}
