package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/paradigm-advisor/internal/page"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	_, err := store.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)

	state := page.State{}.ToggleCriterion("state").SelectScenario("banking").ToggleComparison()
	require.NoError(t, store.Save(ctx, "abc", state))

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, state.Record(), got.Record())

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "old", page.State{}))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(ctx, "new", page.State{}))

	now = now.Add(45 * time.Second)

	_, err := store.Load(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Load(ctx, "new")
	assert.NoError(t, err)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreSaveRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "s", page.State{}))
	now = now.Add(50 * time.Second)
	require.NoError(t, store.Save(ctx, "s", page.State{}.ToggleCriterion("pure")))
	now = now.Add(50 * time.Second)

	got, err := store.Load(ctx, "s")
	require.NoError(t, err)
	assert.True(t, got.Selection.Has("pure"))
}

func TestIDs(t *testing.T) {
	id := NewID()
	assert.True(t, ValidID(id))
	assert.NotEqual(t, id, NewID())
	assert.False(t, ValidID("not-a-session"))
	assert.False(t, ValidID(""))
}

// TestRedisStore runs against a real Redis when REDIS_TEST_ADDRESS is set
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set, skipping")
	}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, RedisConfig{
		Address:   addr,
		KeyPrefix: "advisor:test:" + NewID() + ":",
		TTL:       time.Minute,
	})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ping(ctx))

	id := NewID()
	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)

	state := page.State{}.ToggleCriterion("pure").ToggleCriterion("composition")
	require.NoError(t, store.Save(ctx, id, state))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state.Record(), got.Record())

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
