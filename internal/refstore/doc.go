// Package refstore holds the allow-list of pinned action references and its
// YAML persistence.
//
// The on-disk format is a two-level mapping: action name (owner/repo) to
// reference (commit SHA or tag) to details:
//
//	actions/checkout:
//	  11bd71901bbe5b1630ceea73d27597364c9af683:
//	    expires_at: 2100-01-01
//	    keep: false
//
// # Critical Patterns
//
// Order preservation:
//   - Names and references round-trip in insertion order, never re-sorted.
//   - The in-memory representation is slice-backed for exactly this reason;
//     a plain map would lose the order the file was written in.
//
// Whole-file persistence:
//   - Load reads the entire file; Save overwrites it entirely.
//   - There is no locking and no atomic-write guarantee. Two concurrent
//     invocations against the same file are a read-modify-write race; the
//     tool assumes single-writer CI-job execution.
//
// Dates are day-granular, serialized as YYYY-MM-DD, and held in memory as
// midnight UTC.
package refstore
