package gateway

import (
	"strings"

	"github.com/gopidesupavan/infrastructure-actions/internal/policy"
	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

// Step is one observed workflow step. Only the uses field matters here.
type Step struct {
	Uses string `yaml:"uses"`
}

// splitUses splits "name@reference" on the last @, so action paths and tags
// containing @-free segments are unaffected. Returns false when the
// separator is missing or either side is empty.
func splitUses(uses string) (name, ref string, ok bool) {
	i := strings.LastIndex(uses, "@")
	if i <= 0 || i == len(uses)-1 {
		return "", "", false
	}
	return uses[:i], uses[i+1:], true
}

// UpdateRefs merges observed steps into the store, in the order given.
//
// A step naming an unseen action creates its group. A new reference within a
// group first pushes every pre-existing sibling's expiry to the grace window
// (extending already-expired and soon-expiring entries alike, so downstream
// projects get a migration window instead of instant removal), then appends
// the new reference pinned with the never-expires sentinel and keep unset.
// A (name, reference) pair already present is a no-op, so repeated steps in
// one call take effect only once.
//
// Returns *MalformedStepError on the first step whose uses value cannot be
// split; the store keeps the mutations from the steps before it.
func (g *Gateway) UpdateRefs(steps []Step, store *refstore.Store) error {
	grace := g.pol.Grace(g.clock)

	for i, step := range steps {
		name, newRef, ok := splitUses(step.Uses)
		if !ok {
			return &MalformedStepError{Index: i, Uses: step.Uses}
		}

		entry := store.Ensure(name)
		if entry.Has(newRef) {
			continue
		}

		// Superseded siblings move to the grace window regardless of their
		// current expiry. CVE-driven removals stay a manual edit of the file.
		for j := range entry.Refs {
			entry.Refs[j].ExpiresAt = grace
		}

		entry.Refs = append(entry.Refs, refstore.Ref{
			Ref:       newRef,
			ExpiresAt: policy.NeverExpires,
			Keep:      false,
		})
	}

	return nil
}
