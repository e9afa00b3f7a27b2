package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"sportLink/services/activity"
	"sportLink/set"

	"github.com/rs/zerolog/log"
)

var (
	// ErrFetchFailed wraps the error of a failed batched fetch. Removals made
	// by the same Reconcile call are kept.
	ErrFetchFailed = errors.New("favorites: fetch failed")
	// ErrMissingRecord is returned by a Handle whose record is no longer cached.
	ErrMissingRecord = errors.New("favorites: record not cached")
	// ErrClosed is returned once the reconciler has been closed.
	ErrClosed = errors.New("favorites: reconciler closed")
)

// Fetcher retrieves activities by id. Unknown ids are omitted from the
// result, not reported as errors.
type Fetcher interface {
	GetByIDs(ctx context.Context, ids []string) ([]activity.Activity, error)
}

// Observer receives a copy of the cache, in insertion order, after it changed.
// Snapshots reach observers in the order the changes were made. An observer
// may read the reconciler but must not Reconcile or edit it synchronously.
type Observer func(records []activity.Activity)

// Reconciler keeps an ordered cache of favorite activities aligned with a
// set of favorite ids. Only the reconciler inserts or evicts records;
// callers edit cached records through a Handle.
type Reconciler struct {
	fetcher Fetcher

	// sem serializes Reconcile calls. A queued call waits its turn.
	sem chan struct{}

	// lifetime is cancelled by Close and aborts any in-flight fetch.
	lifetime context.Context
	cancel   context.CancelFunc

	// editMu serializes Handle edits so they commit in call order.
	editMu sync.Mutex

	mu        sync.RWMutex
	records   []activity.Activity
	index     map[string]int
	loading   bool
	closed    bool
	observers map[int]Observer
	nextObs   int
	seq       uint64

	// delivered is the seq of the last notification handed to observers.
	deliverMu sync.Mutex
	delivered uint64
	turn      *sync.Cond
}

// New returns an empty reconciler fetching missing records from fetcher.
// Close it once it is no longer needed.
func New(fetcher Fetcher) *Reconciler {
	lifetime, cancel := context.WithCancel(context.Background())
	r := &Reconciler{
		fetcher:   fetcher,
		sem:       make(chan struct{}, 1),
		lifetime:  lifetime,
		cancel:    cancel,
		index:     make(map[string]int),
		observers: make(map[int]Observer),
	}
	r.turn = sync.NewCond(&r.deliverMu)
	return r
}

// Reconcile aligns the cache with favoriteIDs. Records whose id is no longer
// a favorite are evicted first, then the missing ids are fetched in a single
// batch and appended. Observers are notified once per call, and only when
// the cache changed.
//
// If the fetch fails the evictions stand and the returned error wraps
// ErrFetchFailed. If ctx is cancelled or the reconciler is closed while the
// fetch is in flight, the fetched records are discarded.
func (r *Reconciler) Reconcile(ctx context.Context, favoriteIDs []string) error {
	select {
	case r.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-r.lifetime.Done():
		return ErrClosed
	}
	defer func() { <-r.sem }()

	wanted := set.FromSlice(favoriteIDs)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	cached := r.cachedIDs()
	toRemove := cached.Difference(wanted)
	evicted := r.evict(toRemove)
	toAdd := wanted.Difference(cached)
	if toAdd.IsEmpty() {
		snapshot := r.snapshotIf(evicted > 0)
		r.mu.Unlock()
		reconcileTotal.WithLabelValues(outcomeOK).Inc()
		r.notify(snapshot)
		return nil
	}
	r.loading = true
	r.mu.Unlock()

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(r.lifetime, cancel)
	defer stop()

	ids := toAdd.ToSlice()
	fetchTotal.Inc()
	fetched, fetchErr := r.fetcher.GetByIDs(fetchCtx, ids)

	r.mu.Lock()
	r.loading = false
	var err error
	added := 0
	switch {
	case r.closed:
		err = ErrClosed
	case fetchCtx.Err() != nil:
		err = fetchCtx.Err()
	case fetchErr != nil:
		err = fmt.Errorf("%w: %w", ErrFetchFailed, fetchErr)
	default:
		added = r.insert(fetched, toAdd)
	}
	snapshot := r.snapshotIf(!r.closed && evicted+added > 0)
	r.mu.Unlock()

	recordsFetched.Add(float64(added))
	r.notify(snapshot)

	if err != nil {
		reconcileTotal.WithLabelValues(outcomeFor(err)).Inc()
		log.Warn().Err(err).
			Int("evicted", evicted).
			Strs("pending", ids).
			Msg("favorites reconcile incomplete")
		return err
	}
	reconcileTotal.WithLabelValues(outcomeOK).Inc()
	log.Debug().Int("evicted", evicted).Int("added", added).Msg("favorites reconciled")
	return nil
}

// Binding returns a live handle to the cached record id, or false when the
// record is not cached.
func (r *Reconciler) Binding(id string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.index[id]; !ok {
		return nil, false
	}
	return &Handle{owner: r, id: id}, true
}

// Records returns a copy of the cache in insertion order.
func (r *Reconciler) Records() []activity.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyRecords()
}

// SortedByStart returns a copy of the cache ordered for display, or
// ErrClosed once the reconciler has been closed and its cache discarded.
func (r *Reconciler) SortedByStart() ([]activity.Activity, error) {
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil, ErrClosed
	}
	records := r.copyRecords()
	r.mu.RUnlock()

	activity.SortByStart(records)
	return records, nil
}

// IDs returns the ids currently cached.
func (r *Reconciler) IDs() *set.Set[string] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cachedIDs()
}

// Loading reports whether a fetch is in flight.
func (r *Reconciler) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Subscribe registers an observer and returns a function removing it.
func (r *Reconciler) Subscribe(o Observer) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextObs
	r.nextObs++
	r.observers[id] = o
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

// Close discards the cache and cancels any in-flight fetch. It is safe to
// call more than once.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.cancel()
	r.records = nil
	r.index = make(map[string]int)
	r.observers = make(map[int]Observer)
}

// The helpers below expect r.mu to be held.

func (r *Reconciler) cachedIDs() *set.Set[string] {
	ids := set.New[string]()
	for _, record := range r.records {
		ids.Add(record.ID)
	}
	return ids
}

func (r *Reconciler) evict(ids *set.Set[string]) int {
	if ids.IsEmpty() {
		return 0
	}
	kept := r.records[:0]
	for _, record := range r.records {
		if !ids.Contains(record.ID) {
			kept = append(kept, record)
		}
	}
	evicted := len(r.records) - len(kept)
	clear(r.records[len(kept):])
	r.records = kept
	r.reindex()
	recordsEvicted.Add(float64(evicted))
	return evicted
}

// insert appends fetched records that were requested and are not already
// cached. An existing cached copy always wins over a fetched one.
func (r *Reconciler) insert(fetched []activity.Activity, requested *set.Set[string]) int {
	added := 0
	for _, record := range fetched {
		if !requested.Contains(record.ID) {
			continue
		}
		if _, exists := r.index[record.ID]; exists {
			continue
		}
		r.index[record.ID] = len(r.records)
		r.records = append(r.records, record.Clone())
		added++
	}
	return added
}

func (r *Reconciler) reindex() {
	r.index = make(map[string]int, len(r.records))
	for i, record := range r.records {
		r.index[record.ID] = i
	}
}

func (r *Reconciler) copyRecords() []activity.Activity {
	out := make([]activity.Activity, len(r.records))
	for i, record := range r.records {
		out[i] = record.Clone()
	}
	return out
}

type notification struct {
	seq       uint64
	records   []activity.Activity
	observers []Observer
}

func (r *Reconciler) snapshotIf(changed bool) *notification {
	if !changed || len(r.observers) == 0 {
		return nil
	}
	r.seq++
	n := &notification{
		seq:       r.seq,
		records:   r.copyRecords(),
		observers: make([]Observer, 0, len(r.observers)),
	}
	for _, o := range r.observers {
		n.observers = append(n.observers, o)
	}
	return n
}

// notify runs outside r.mu so observers may read the reconciler. It waits
// for every earlier snapshot to be delivered first.
func (r *Reconciler) notify(n *notification) {
	if n == nil {
		return
	}
	r.deliverMu.Lock()
	for r.delivered+1 != n.seq {
		r.turn.Wait()
	}
	r.deliverMu.Unlock()

	defer func() {
		r.deliverMu.Lock()
		r.delivered = n.seq
		r.deliverMu.Unlock()
		r.turn.Broadcast()
	}()
	for _, o := range n.observers {
		o(n.records)
	}
}
