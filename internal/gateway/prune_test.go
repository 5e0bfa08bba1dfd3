package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

func TestRemoveExpiredRefs_Boundaries(t *testing.T) {
	g := newTestGateway(t) // today = 2024-06-01

	tests := []struct {
		name     string
		ref      refstore.Ref
		retained bool
	}{
		{"expired yesterday", refstore.Ref{Ref: "r", ExpiresAt: day(2024, time.May, 31)}, false},
		{"expires today", refstore.Ref{Ref: "r", ExpiresAt: day(2024, time.June, 1)}, false},
		{"expires today but kept", refstore.Ref{Ref: "r", ExpiresAt: day(2024, time.June, 1), Keep: true}, true},
		{"expires tomorrow", refstore.Ref{Ref: "r", ExpiresAt: day(2024, time.June, 2)}, true},
		{"long expired but kept", refstore.Ref{Ref: "r", ExpiresAt: day(2020, time.January, 1), Keep: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := refstore.New()
			store.Ensure("o/r").Refs = []refstore.Ref{tt.ref}

			g.RemoveExpiredRefs(store)

			if tt.retained {
				require.Equal(t, 1, store.Len())
				assert.True(t, store.Entries[0].Has("r"))
			} else {
				assert.Equal(t, 0, store.Len())
			}
		})
	}
}

func TestRemoveExpiredRefs_DropsEmptiedNamesOnly(t *testing.T) {
	g := newTestGateway(t)
	store := refstore.New()
	store.Ensure("gone/gone").Refs = []refstore.Ref{
		{Ref: "r1", ExpiresAt: day(2024, time.January, 1)},
		{Ref: "r2", ExpiresAt: day(2024, time.May, 1)},
	}
	store.Ensure("stays/stays").Refs = []refstore.Ref{
		{Ref: "old", ExpiresAt: day(2024, time.January, 1)},
		{Ref: "new", ExpiresAt: day(2100, time.January, 1)},
	}

	g.RemoveExpiredRefs(store)

	require.Equal(t, 1, store.Len())
	entry := store.Entries[0]
	assert.Equal(t, "stays/stays", entry.Name)
	require.Len(t, entry.Refs, 1)
	assert.Equal(t, "new", entry.Refs[0].Ref)
}

func TestRemoveExpiredRefs_Idempotent(t *testing.T) {
	g := newTestGateway(t)
	store := refstore.New()
	store.Ensure("o/r").Refs = []refstore.Ref{
		{Ref: "expired", ExpiresAt: day(2024, time.January, 1)},
		{Ref: "valid", ExpiresAt: day(2100, time.January, 1)},
	}

	g.RemoveExpiredRefs(store)
	after := *store.Lookup("o/r")

	g.RemoveExpiredRefs(store)

	require.Equal(t, 1, store.Len())
	assert.Equal(t, after, *store.Lookup("o/r"))
}

func TestRemoveExpiredRefs_EmptyStoreEndToEnd(t *testing.T) {
	// Store {"o/r": {"abc": expires 2024-01-01}} with today 2024-06-01
	// prunes to a completely empty store.
	g := newTestGateway(t)
	store := refstore.New()
	store.Ensure("o/r").Refs = []refstore.Ref{
		{Ref: "abc", ExpiresAt: day(2024, time.January, 1)},
	}

	g.RemoveExpiredRefs(store)

	assert.Equal(t, 0, store.Len())
}
