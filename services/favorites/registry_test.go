package favorites

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"sportLink/services/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryPolicy{
	MaxRetries:      3,
	InitialInterval: time.Millisecond,
	MaxElapsedTime:  time.Second,
}

func TestRegistryReusesReconciler(t *testing.T) {
	g, err := NewRegistry(newFakeFetcher(), 4)
	require.NoError(t, err)

	a := g.ForUser("u1")
	assert.Same(t, a, g.ForUser("u1"))
	assert.NotSame(t, a, g.ForUser("u2"))

	got, ok := g.Lookup("u1")
	require.True(t, ok)
	assert.Same(t, a, got)
	_, ok = g.Lookup("nobody")
	assert.False(t, ok)
}

func TestRegistryEvictionClosesReconciler(t *testing.T) {
	g, err := NewRegistry(newFakeFetcher("A"), 1)
	require.NoError(t, err)

	first := g.ForUser("u1")
	require.NoError(t, first.Reconcile(context.Background(), []string{"A"}))

	g.ForUser("u2")
	_, ok := g.Lookup("u1")
	assert.False(t, ok)
	assert.ErrorIs(t, first.Reconcile(context.Background(), []string{"A"}), ErrClosed)
}

func TestRegistryForgetAndClose(t *testing.T) {
	g, err := NewRegistry(newFakeFetcher(), 4)
	require.NoError(t, err)

	r1 := g.ForUser("u1")
	r2 := g.ForUser("u2")
	g.Forget("u1")
	assert.ErrorIs(t, r1.Reconcile(context.Background(), nil), ErrClosed)

	g.Close()
	assert.ErrorIs(t, r2.Reconcile(context.Background(), nil), ErrClosed)
}

func TestRegistryApplyEchoesIntoEveryCache(t *testing.T) {
	f := newFakeFetcher("A", "B")
	g, err := NewRegistry(f, 4)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, g.ForUser("u1").Reconcile(ctx, []string{"A"}))
	require.NoError(t, g.ForUser("u2").Reconcile(ctx, []string{"A", "B"}))
	require.NoError(t, g.ForUser("u3").Reconcile(ctx, []string{"B"}))

	applied := g.Apply("A", func(a *activity.Activity) { a.Title = "renamed" })
	assert.Equal(t, 2, applied)

	for _, user := range []string{"u1", "u2"} {
		r, _ := g.Lookup(user)
		h, ok := r.Binding("A")
		require.True(t, ok)
		got, err := h.Get()
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
	}
}

func TestSyncWithRetryRecoversFromFetchFailure(t *testing.T) {
	var calls atomic.Int32
	r := New(fetcherFunc(func(ctx context.Context, ids []string) ([]activity.Activity, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("unavailable")
		}
		return []activity.Activity{{ID: "A"}}, nil
	}))

	require.NoError(t, SyncWithRetry(context.Background(), r, []string{"A"}, fastRetry))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"A"}, cachedIDs(r))
}

func TestSyncWithRetryGivesUp(t *testing.T) {
	var calls atomic.Int32
	r := New(fetcherFunc(func(ctx context.Context, ids []string) ([]activity.Activity, error) {
		calls.Add(1)
		return nil, errors.New("unavailable")
	}))

	err := SyncWithRetry(context.Background(), r, []string{"A"}, fastRetry)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, int32(fastRetry.MaxRetries+1), calls.Load())
}

func TestSyncWithRetryStopsOnClosed(t *testing.T) {
	r := New(newFakeFetcher("A"))
	r.Close()

	err := SyncWithRetry(context.Background(), r, []string{"A"}, fastRetry)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSortedByStartReportsEvictedCache(t *testing.T) {
	g, err := NewRegistry(newFakeFetcher("A", "B"), 1)
	require.NoError(t, err)
	ctx := context.Background()

	r := g.ForUser("u1")
	require.NoError(t, SyncWithRetry(ctx, r, []string{"A", "B"}, fastRetry))
	g.ForUser("u2")

	records, err := r.SortedByStart()
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, records)
}

func TestRegistrySyncStartsOverAfterEviction(t *testing.T) {
	base := newFakeFetcher("A", "B")
	var g *Registry
	var calls atomic.Int32
	g, err := NewRegistry(fetcherFunc(func(ctx context.Context, ids []string) ([]activity.Activity, error) {
		if calls.Add(1) == 1 {
			// Another user pushes u1 out of the registry mid-fetch.
			g.ForUser("u2")
		}
		return base.GetByIDs(ctx, ids)
	}), 1)
	require.NoError(t, err)

	records, err := g.Sync(context.Background(), "u1", []string{"A", "B"}, fastRetry)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// newFakeFetcher gives later ids earlier start times.
	assert.Equal(t, "B", records[0].ID)
	assert.Equal(t, "A", records[1].ID)
	assert.Equal(t, int32(2), calls.Load())

	r, ok := g.Lookup("u1")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"A", "B"}, cachedIDs(r))
}

func TestRegistrySyncServesRemainingCacheOnFetchFailure(t *testing.T) {
	f := newFakeFetcher("A", "B", "C")
	g, err := NewRegistry(f, 4)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = g.Sync(ctx, "u1", []string{"A", "B"}, fastRetry)
	require.NoError(t, err)

	f.setErr(errors.New("unavailable"))
	records, err := g.Sync(ctx, "u1", []string{"B", "C"}, fastRetry)
	assert.ErrorIs(t, err, ErrFetchFailed)
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].ID)
}

func TestRegistrySyncStopsOnCancelledContext(t *testing.T) {
	g, err := NewRegistry(newFakeFetcher("A"), 4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := g.Sync(ctx, "u1", []string{"A"}, fastRetry)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
}
