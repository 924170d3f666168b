package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(Options{Sender: &recordingSender{}, Clock: newFakeClock()}, time.Minute)
	defer store.Close()

	sess := store.Create()
	require.NotEmpty(t, sess.ID())
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID()))
	_, err = store.Get(sess.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID()), ErrSessionNotFound)
}

func TestStore_SessionIDsAreUnique(t *testing.T) {
	store := NewStore(Options{Sender: &recordingSender{}}, 0)
	defer store.Close()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := store.Create().ID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestStore_SweepExpiresIdleSessions(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(Options{Sender: &recordingSender{}, Clock: clock}, 10*time.Minute)
	defer store.Close()

	stale := store.Create()
	clock.Advance(6 * time.Minute)
	fresh := store.Create()
	clock.Advance(5 * time.Minute)

	assert.Equal(t, 1, store.Sweep())

	_, err := store.Get(stale.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(fresh.ID())
	assert.NoError(t, err)
}

func TestStore_SweepKeepsSessionsAwaitingReset(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(Options{Sender: &recordingSender{}, Clock: clock, ResetDelay: time.Hour}, time.Minute)
	defer store.Close()

	sess := store.Create()
	fill(t, sess)
	_, err := sess.Submit(context.Background())
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	assert.Zero(t, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetRefreshesActivity(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(Options{Sender: &recordingSender{}, Clock: clock}, 10*time.Minute)
	defer store.Close()

	sess := store.Create()
	clock.Advance(9 * time.Minute)
	_, err := store.Get(sess.ID())
	require.NoError(t, err)
	clock.Advance(9 * time.Minute)

	assert.Zero(t, store.Sweep())
}

func TestStore_CloseStopsTimers(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(Options{Sender: &recordingSender{}, Clock: clock}, time.Minute)

	sess := store.Create()
	fill(t, sess)
	_, err := sess.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, clock.pending())

	store.Close()
	store.Close()
	assert.Zero(t, clock.pending())
	assert.Zero(t, store.Len())
}
