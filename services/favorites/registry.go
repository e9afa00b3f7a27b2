package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sportLink/services/activity"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
)

// Registry owns one Reconciler per user. The least recently used
// reconcilers are closed once the registry is full.
type Registry struct {
	fetcher Fetcher
	mu      sync.Mutex
	cache   *lru.Cache
}

func NewRegistry(fetcher Fetcher, size int) (*Registry, error) {
	cache, err := lru.NewWithEvict(size, func(key interface{}, value interface{}) {
		value.(*Reconciler).Close()
		cachedReconcilers.Dec()
		log.Debug().Interface("userId", key).Msg("favorites cache evicted")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create favorites registry: %w", err)
	}
	return &Registry{
		fetcher: fetcher,
		cache:   cache,
	}, nil
}

// ForUser returns the user's reconciler, creating it on first use.
func (g *Registry) ForUser(userID string) *Reconciler {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.cache.Get(userID); ok {
		return v.(*Reconciler)
	}
	r := New(g.fetcher)
	g.cache.Add(userID, r)
	cachedReconcilers.Inc()
	return r
}

// Lookup returns the user's reconciler without creating one.
func (g *Registry) Lookup(userID string) (*Reconciler, bool) {
	v, ok := g.cache.Peek(userID)
	if !ok {
		return nil, false
	}
	return v.(*Reconciler), true
}

// Apply echoes a mutation of activityID into every cached copy and returns
// how many caches held it.
func (g *Registry) Apply(activityID string, edit func(record *activity.Activity)) int {
	applied := 0
	for _, key := range g.cache.Keys() {
		v, ok := g.cache.Peek(key)
		if !ok {
			continue
		}
		h, ok := v.(*Reconciler).Binding(activityID)
		if !ok {
			continue
		}
		// The record may be evicted between Binding and Update.
		if err := h.Update(edit); err == nil {
			applied++
		}
	}
	return applied
}

// Forget closes and drops the user's reconciler.
func (g *Registry) Forget(userID string) {
	g.cache.Remove(userID)
}

// Close closes every reconciler held by the registry.
func (g *Registry) Close() {
	g.cache.Purge()
}

// syncAttempts bounds how often Sync starts over after the user's reconciler
// was evicted under it.
const syncAttempts = 3

// Sync reconciles the user's cache with favoriteIDs and returns the cached
// records ordered for display. When the reconciler is evicted by another
// user mid-sync, Sync starts over on a fresh one, so a nil error always
// comes with the full set. When the fetch keeps failing the remaining cache
// is returned along with an error wrapping ErrFetchFailed.
func (g *Registry) Sync(ctx context.Context, userID string, favoriteIDs []string, policy RetryPolicy) ([]activity.Activity, error) {
	var err error
	for attempt := 0; attempt < syncAttempts; attempt++ {
		r := g.ForUser(userID)
		err = SyncWithRetry(ctx, r, favoriteIDs, policy)
		if errors.Is(err, ErrClosed) {
			log.Debug().Str("userId", userID).Int("attempt", attempt).Msg("favorites cache evicted during sync")
			continue
		}
		if err != nil && !errors.Is(err, ErrFetchFailed) {
			return nil, err
		}
		records, sortErr := r.SortedByStart()
		if sortErr != nil {
			err = sortErr
			continue
		}
		return records, err
	}
	return nil, err
}

type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      3,
	InitialInterval: 200 * time.Millisecond,
	MaxElapsedTime:  5 * time.Second,
}

// SyncWithRetry reconciles r with favoriteIDs, retrying while the fetch
// fails. Any other error stops the retries.
func SyncWithRetry(ctx context.Context, r *Reconciler, favoriteIDs []string, policy RetryPolicy) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.MaxElapsedTime = policy.MaxElapsedTime

	op := func() error {
		err := r.Reconcile(ctx, favoriteIDs)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrFetchFailed) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retryIn", wait).Msg("retrying favorites reconcile")
	}
	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, policy.MaxRetries), ctx), notify)
}
