package favorites

import (
	"sportLink/services/activity"
)

// Handle is a read-write accessor to one cached record. It holds the key,
// not the record, so every access re-checks that the record is still cached.
type Handle struct {
	owner *Reconciler
	id    string
}

// ID returns the id of the record the handle points to.
func (h *Handle) ID() string {
	return h.id
}

// Get returns a copy of the cached record or ErrMissingRecord.
func (h *Handle) Get() (activity.Activity, error) {
	r := h.owner
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[h.id]
	if !ok {
		return activity.Activity{}, ErrMissingRecord
	}
	return r.records[i].Clone(), nil
}

// Set replaces the cached record. The id of a is forced to the handle's id.
func (h *Handle) Set(a activity.Activity) error {
	return h.Update(func(record *activity.Activity) {
		*record = a.Clone()
	})
}

// Update applies edit to a copy of the cached record, stores the copy and
// notifies observers. edit runs without the cache lock held, so it may read
// the reconciler, but it must not call Set or Update on the same reconciler.
// Edits on one reconciler are applied one at a time.
func (h *Handle) Update(edit func(record *activity.Activity)) error {
	r := h.owner
	r.editMu.Lock()
	defer r.editMu.Unlock()

	record, err := h.Get()
	if err != nil {
		return err
	}
	edit(&record)
	record.ID = h.id

	r.mu.Lock()
	i, ok := r.index[h.id]
	if !ok {
		// Evicted while edit ran.
		r.mu.Unlock()
		return ErrMissingRecord
	}
	r.records[i] = record
	snapshot := r.snapshotIf(true)
	r.mu.Unlock()

	r.notify(snapshot)
	return nil
}
