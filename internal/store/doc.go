// Package store provides an optional SQLite-backed ledger of QSGAL builds.
//
// One row is kept per (source, target) pair. Recording the same source for
// the same target again replaces the row and gives it a fresh seq.
//
// # Ordering
//
//   - seq is a logical counter assigned at write time, never a timestamp
//   - All list queries use ORDER BY seq ASC, id ASC COLLATE BINARY
//
// # Identity
//
// Build IDs, source hashes and manifest hashes are computed by functions in
// internal/ir/hash.go from RFC 8785 canonical JSON and SHA-256 with domain
// separation. run_id is a UUIDv7 identifying the invocation that wrote the
// row.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
package store
