package content

// Locator hands out location identities. Identities are a monotonic
// counter rather than random IDs so a checkpoint can be restored and
// the same identities handed out again on a retried layout attempt.
type Locator struct {
	next int64
}

// NewLocator creates a locator whose first allocation is 1 (0 is the
// "unidentified" sentinel).
func NewLocator() *Locator {
	return &Locator{next: 1}
}

// Allocate returns a fresh location identity
func (l *Locator) Allocate() int64 {
	id := l.next
	l.next++
	return id
}

// Checkpoint captures the locator state for a speculative layout attempt
type Checkpoint struct {
	next int64
}

// Checkpoint captures the current state
func (l *Locator) Checkpoint() Checkpoint {
	return Checkpoint{next: l.next}
}

// Restore rewinds the locator to a previously captured state. Identities
// allocated after the checkpoint become available again. A retried
// attempt that replays the same elements in the same order therefore
// reassigns the identities they already hold; restore is only safe when
// it happens together with the rollback of the layout state that was
// built from those identities.
func (l *Locator) Restore(cp Checkpoint) {
	l.next = cp.next
}
