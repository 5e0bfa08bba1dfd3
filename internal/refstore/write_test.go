package refstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_PreservesInsertionOrder(t *testing.T) {
	// Deliberately non-alphabetical: keys must never be re-sorted on write.
	store := &Store{Entries: []Entry{
		{Name: "zizmor/zizmor", Refs: []Ref{
			{Ref: "v1", ExpiresAt: day(2024, time.June, 1), Keep: true},
		}},
		{Name: "actions/checkout", Refs: []Ref{
			{Ref: "11bd71901bbe5b1630ceea73d27597364c9af683", ExpiresAt: day(2100, time.January, 1)},
			{Ref: "v4", ExpiresAt: day(2024, time.August, 24)},
		}},
	}}

	data, err := Marshal(store)
	require.NoError(t, err)

	want := `zizmor/zizmor:
  v1:
    expires_at: 2024-06-01
    keep: true
actions/checkout:
  11bd71901bbe5b1630ceea73d27597364c9af683:
    expires_at: 2100-01-01
    keep: false
  v4:
    expires_at: 2024-08-24
    keep: false
`
	assert.Equal(t, want, string(data))
}

func TestMarshal_EmptyStore(t *testing.T) {
	data, err := Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, err := Parse("actions.yml", []byte(sampleActions))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "actions.yml")
	require.NoError(t, Save(path, store))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, store.Len(), loaded.Len())
	for i := range store.Entries {
		assert.Equal(t, store.Entries[i].Name, loaded.Entries[i].Name)
		require.Len(t, loaded.Entries[i].Refs, len(store.Entries[i].Refs))
		for j, ref := range store.Entries[i].Refs {
			got := loaded.Entries[i].Refs[j]
			assert.Equal(t, ref.Ref, got.Ref)
			assert.Equal(t, ref.ExpiresAt, got.ExpiresAt)
			assert.Equal(t, ref.Keep, got.Keep)
		}
	}
}

func TestSave_FullyOverwrites(t *testing.T) {
	path := writeTemp(t, sampleActions)

	small := New()
	small.Ensure("a/a").Refs = []Ref{{Ref: "v1", ExpiresAt: day(2100, time.January, 1)}}
	require.NoError(t, Save(path, small))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "a/a", loaded.Entries[0].Name)
}

func TestWriteText_Overwrites(t *testing.T) {
	path := writeTemp(t, "old content, much longer than the replacement\n")

	require.NoError(t, WriteText(path, "new\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteText_ErrorIsWriteError(t *testing.T) {
	err := WriteText(filepath.Join(t.TempDir(), "no-such-dir", "out.txt"), "content")

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, writeErr.Error(), "out.txt")
}
