// Package gateway implements the allow-list maintenance operations.
//
// The gateway owns four transformations over the reference store:
//
//   - Reference updater: merges references observed in the dummy workflow
//     into the store, pushing superseded siblings onto the grace window.
//   - Expiry pruner: removes references whose expiry date has passed and are
//     not flagged keep, dropping action names left with no references.
//   - Pattern generator: renders the currently-valid references as a flat
//     "name@ref" list consumed by allow-list validation.
//   - Workflow synthesizer: renders the store as a disabled dummy workflow
//     whose steps are scanned by dependency-update tooling to discover which
//     references are still in use.
//
// Each file-level operation follows the same single-writer shape: load the
// store from disk, transform it in memory, publish the rendered result to
// the job log, write the output in full. A load failure aborts before any
// write; no error is caught and suppressed internally.
//
// Lifecycle of a single reference:
//
//	ACTIVE -> EXPIRING_SOON (inside the synthesizer horizon, still stored)
//	       -> EXPIRED (expires_at <= today, not kept)
//	       -> REMOVED (deleted by the pruner)
//
// A keep flag pins a reference in ACTIVE for the pruner and pattern
// generator. The synthesizer excludes kept references outright: they are
// already trusted, so the dummy workflow has nothing to discover about them.
package gateway
