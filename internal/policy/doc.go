// Package policy defines the date arithmetic behind reference expiry.
//
// All dates are day-granular: a Clock reports "today" as midnight UTC, and
// every comparison in the gateway is done on those normalized values. Two
// windows govern the lifecycle of a pinned reference:
//
//   - Horizon (default 4 weeks): references expiring within this window are
//     pre-emptively dropped from the synthesized dummy workflow, so scanners
//     stop proposing updates against soon-to-be-removed pins.
//   - Grace (default 12 weeks): when a new reference for an action is
//     observed, every pre-existing sibling reference has its expiry moved to
//     this far out, giving downstream projects time to migrate.
//
// The two windows are deliberately independent knobs. They encode different
// intents and there is no requirement that one derives from the other.
package policy
