package gateway

import "github.com/gopidesupavan/infrastructure-actions/internal/refstore"

// RemoveExpiredRefs deletes every reference with expires_at on or before
// today that is not flagged keep, then drops action names whose groups are
// left empty. Idempotent: a second call on the same store is a no-op.
//
// Deletion is two-pass: targets are collected first, then removed, so the
// store is never mutated while being iterated.
func (g *Gateway) RemoveExpiredRefs(store *refstore.Store) {
	today := g.clock.Today()

	type target struct {
		name string
		ref  string
	}
	var expired []target

	for i := range store.Entries {
		entry := &store.Entries[i]
		for _, ref := range entry.Refs {
			if !ref.ExpiresAt.After(today) && !ref.Keep {
				expired = append(expired, target{name: entry.Name, ref: ref.Ref})
			}
		}
	}

	for _, t := range expired {
		entry := store.Lookup(t.name)
		entry.Delete(t.ref)
		if len(entry.Refs) == 0 {
			store.Delete(t.name)
		}
	}
}
