package refstore

import "time"

// Ref is one pinned reference of an action, with its lifecycle metadata.
type Ref struct {
	// Ref is the version pin: a commit SHA or a tag.
	Ref string

	// ExpiresAt is the date from which the reference is eligible for
	// removal (unless Keep is set). Always present; midnight UTC.
	ExpiresAt time.Time

	// Keep pins the reference indefinitely, exempting it from expiry-based
	// exclusion and removal.
	Keep bool
}

// Entry groups the known references of a single action, in insertion order.
type Entry struct {
	// Name identifies the action, e.g. "actions/checkout".
	Name string

	// Refs holds the action's references in insertion order.
	Refs []Ref
}

// Lookup returns a pointer to the named reference, or nil if absent.
func (e *Entry) Lookup(ref string) *Ref {
	for i := range e.Refs {
		if e.Refs[i].Ref == ref {
			return &e.Refs[i]
		}
	}
	return nil
}

// Has reports whether the named reference exists in this entry.
func (e *Entry) Has(ref string) bool {
	return e.Lookup(ref) != nil
}

// Delete removes the named reference, preserving the order of the rest.
// Unknown references are ignored.
func (e *Entry) Delete(ref string) {
	for i := range e.Refs {
		if e.Refs[i].Ref == ref {
			e.Refs = append(e.Refs[:i], e.Refs[i+1:]...)
			return
		}
	}
}

// Store is the full allow-list: an ordered mapping from action name to its
// reference group. Order is insertion order and is preserved across load and
// save.
type Store struct {
	Entries []Entry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Lookup returns a pointer to the entry for name, or nil if absent.
func (s *Store) Lookup(name string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].Name == name {
			return &s.Entries[i]
		}
	}
	return nil
}

// Ensure returns the entry for name, appending an empty one if absent.
//
// The returned pointer is valid until the next call that appends to
// s.Entries.
func (s *Store) Ensure(name string) *Entry {
	if e := s.Lookup(name); e != nil {
		return e
	}
	s.Entries = append(s.Entries, Entry{Name: name})
	return &s.Entries[len(s.Entries)-1]
}

// Delete removes the entry for name, preserving the order of the rest.
// Unknown names are ignored.
func (s *Store) Delete(name string) {
	for i := range s.Entries {
		if s.Entries[i].Name == name {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of action names in the store.
func (s *Store) Len() int {
	return len(s.Entries)
}
