package refstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleActions = `actions/checkout:
  11bd71901bbe5b1630ceea73d27597364c9af683:
    expires_at: 2100-01-01
    keep: false
  v4:
    expires_at: 2024-08-24
zizmor/zizmor:
  v1:
    expires_at: 2024-06-01
    keep: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesNestedMapping(t *testing.T) {
	store, err := Load(writeTemp(t, sampleActions))
	require.NoError(t, err)

	require.Equal(t, 2, store.Len())
	checkout := store.Entries[0]
	assert.Equal(t, "actions/checkout", checkout.Name)
	require.Len(t, checkout.Refs, 2)

	pinned := checkout.Refs[0]
	assert.Equal(t, "11bd71901bbe5b1630ceea73d27597364c9af683", pinned.Ref)
	assert.Equal(t, day(2100, time.January, 1), pinned.ExpiresAt)
	assert.False(t, pinned.Keep)

	// keep absent is treated as false.
	tag := checkout.Refs[1]
	assert.Equal(t, "v4", tag.Ref)
	assert.False(t, tag.Keep)

	kept := store.Entries[1].Refs[0]
	assert.True(t, kept.Keep)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "a: [unclosed\n"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeMalformed, loadErr.Code)
}

func TestParse_EmptyDocumentIsEmptyStore(t *testing.T) {
	store, err := Parse("actions.yml", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestParse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"top level sequence", "- a\n- b\n", ErrCodeBadShape},
		{"action value scalar", "actions/checkout: v4\n", ErrCodeBadShape},
		{"details scalar", "actions/checkout:\n  v4: 2024-06-01\n", ErrCodeBadShape},
		{"missing expires_at", "actions/checkout:\n  v4:\n    keep: true\n", ErrCodeBadShape},
		{"keep not boolean", "actions/checkout:\n  v4:\n    expires_at: 2024-06-01\n    keep: maybe\n", ErrCodeBadShape},
		{"expires_at not a date", "actions/checkout:\n  v4:\n    expires_at: soon\n", ErrCodeBadDate},
		{"duplicate reference", "actions/checkout:\n  v4:\n    expires_at: 2024-06-01\n  v4:\n    expires_at: 2024-06-02\n", ErrCodeBadShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("actions.yml", []byte(tt.content))

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.code, loadErr.Code)
		})
	}
}

func TestLoadError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewLoadError(ErrCodeNotFound, "actions.yml", "cannot read", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, err.Error(), "actions.yml")
}
